package services

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
)

// HttpRequest sends a JSON request and returns the raw response body. Used
// for worker callbacks to the app API.
func HttpRequest(method, url string, header map[string]string, data interface{}) ([]byte, error) {

	var requestBody []byte
	var err error
	var req *http.Request

	if data != nil {
		if requestBody, err = json.Marshal(data); err != nil {
			return nil, err
		}
		if req, err = http.NewRequest(method, url, bytes.NewBuffer(requestBody)); err != nil {
			return nil, err
		}
	} else {
		if req, err = http.NewRequest(method, url, nil); err != nil {
			return nil, err
		}
	}

	client := &http.Client{}

	req.Header.Set("Content-Type", "application/json")
	if header != nil {
		for key, element := range header {
			req.Header.Set(key, element)
		}
	}
	if resp, err := client.Do(req); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		if body, err := ioutil.ReadAll(resp.Body); err != nil {
			return nil, err
		} else {
			return body, nil
		}
	}
}
