package structs

type EnviromentModel struct {
	Database       database
	Authentication authentication
	RabbitMQ       rabbitmq
	Log            log
	Export         export
	Server         server
	Router         router
}

type server struct {
	AppAPI string
}

type database struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type authentication struct {
	Token         string
	EncryptionKey string
}

type rabbitmq struct {
	Domain string
}

type log struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type export struct {
	TimeoutDuration int
	Path            string
}

type router struct {
	Port int
}
