package meal

import (
	"strings"

	"mealtrack-go-api/database"
	"mealtrack-go-api/models"
	"mealtrack-go-api/repository"
	"mealtrack-go-api/structs"
)

// Outcome enumerates the terminal states of a meal operation. Expected
// conditions never surface as raw errors past this service.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeInvalidToken
	OutcomeInvalidPassword
	OutcomeUnknownUser
	OutcomeInvalidMealType
	OutcomeDayNotFound
	OutcomeMealNotFound
	OutcomeDuplicateMeal
	OutcomeFailed
)

type MealService struct {
	Users     repository.UserRepo
	Days      repository.DayRepo
	MealTypes repository.MealTypeRepo
	Meals     repository.MealRepo
	DayMeals  repository.DayMealRepo
}

// authorize is the preamble shared by every meal operation: shared-secret
// token, then password, then the full user record.
func (s *MealService) authorize(credentials structs.CredentialsItem) (*models.User, Outcome) {
	if !database.IsTokenValid(credentials.Token) {
		return nil, OutcomeInvalidToken
	}
	status, err := s.Users.CheckPassword(credentials)
	if err != nil {
		return nil, OutcomeFailed
	}
	switch status {
	case repository.StatusInvalidToken:
		return nil, OutcomeInvalidToken
	case repository.StatusInvalidPassword:
		return nil, OutcomeInvalidPassword
	case repository.StatusUnknownUser:
		return nil, OutcomeUnknownUser
	}
	user, err := s.Users.GetByName(credentials.UserName)
	if err != nil {
		return nil, OutcomeUnknownUser
	}
	return user, OutcomeOK
}

// AddMeal records one meal for the slot, creating the day on demand. The
// meal row and its link commit together, so a duplicate slot leaves no
// orphan meal behind.
func (s *MealService) AddMeal(item structs.MealItem) Outcome {
	user, out := s.authorize(item.Credentials)
	if out != OutcomeOK {
		return out
	}
	day, err := s.Days.Create(item.Year, item.Month, item.Day)
	if err != nil {
		return OutcomeFailed
	}
	mealTypeID, err := s.MealTypes.GetIDByName(strings.ToLower(item.MealType))
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeInvalidMealType
		}
		return OutcomeFailed
	}
	if _, err := s.DayMeals.CreateWithMeal(user.ID, day.ID, mealTypeID, item.FatLevel, item.SugarLevel); err != nil {
		if err == repository.ErrDuplicate {
			return OutcomeDuplicateMeal
		}
		return OutcomeFailed
	}
	return OutcomeOK
}

func (s *MealService) EditMeal(item structs.MealItem) Outcome {
	user, out := s.authorize(item.Credentials)
	if out != OutcomeOK {
		return out
	}
	day, err := s.Days.GetByDate(item.Year, item.Month, item.Day)
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeDayNotFound
		}
		return OutcomeFailed
	}
	mealTypeID, err := s.MealTypes.GetIDByName(strings.ToLower(item.MealType))
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeInvalidMealType
		}
		return OutcomeFailed
	}
	link, err := s.DayMeals.Get(user.ID, day.ID, mealTypeID)
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeMealNotFound
		}
		return OutcomeFailed
	}
	if err := s.Meals.Update(link.MealID, item.FatLevel, item.SugarLevel); err != nil {
		return OutcomeFailed
	}
	return OutcomeOK
}

func (s *MealService) DeleteMeal(item structs.DeleteMealItem) Outcome {
	user, out := s.authorize(item.Credentials)
	if out != OutcomeOK {
		return out
	}
	day, err := s.Days.GetByDate(item.Year, item.Month, item.Day)
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeDayNotFound
		}
		return OutcomeFailed
	}
	mealTypeID, err := s.MealTypes.GetIDByName(strings.ToLower(item.MealType))
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeInvalidMealType
		}
		return OutcomeFailed
	}
	link, err := s.DayMeals.Get(user.ID, day.ID, mealTypeID)
	if err != nil {
		if err == repository.ErrNotFound {
			return OutcomeMealNotFound
		}
		return OutcomeFailed
	}
	if err := s.Meals.Delete(user.ID, day.ID, mealTypeID, link.MealID); err != nil {
		if err == repository.ErrNotFound {
			return OutcomeMealNotFound
		}
		return OutcomeFailed
	}
	return OutcomeOK
}

// GetMeals lists the meals of one user and day. An absent day means no
// meals were ever written for that date, so the answer is an empty list,
// not an error. Links whose meal type or meal row cannot be resolved are
// dropped rather than failing the whole request.
func (s *MealService) GetMeals(item structs.GetMealsItem) ([]structs.MealInfo, Outcome) {
	user, out := s.authorize(item.Credentials)
	if out != OutcomeOK {
		return nil, out
	}
	mealList := []structs.MealInfo{}
	day, err := s.Days.GetByDate(item.Year, item.Month, item.Day)
	if err != nil {
		if err == repository.ErrNotFound {
			return mealList, OutcomeOK
		}
		return nil, OutcomeFailed
	}
	links, err := s.DayMeals.ListByUserAndDay(user.ID, day.ID)
	if err != nil {
		return nil, OutcomeFailed
	}
	for _, link := range links {
		mealTypeName, err := s.MealTypes.GetNameByID(link.MealTypeID)
		if err != nil {
			continue
		}
		mealRow, err := s.Meals.GetByID(link.MealID)
		if err != nil {
			continue
		}
		mealList = append(mealList, structs.MealInfo{
			Year:       item.Year,
			Month:      item.Month,
			Day:        item.Day,
			MealType:   mealTypeName,
			FatLevel:   mealRow.FatLevel,
			SugarLevel: mealRow.SugarLevel,
		})
	}
	return mealList, OutcomeOK
}

// GetMealTypes lists the static reference data; only the shared token gates
// it.
func (s *MealService) GetMealTypes(token string) ([]models.MealType, Outcome) {
	if !database.IsTokenValid(token) {
		return nil, OutcomeInvalidToken
	}
	mealTypes, err := s.MealTypes.GetAll()
	if err != nil {
		return nil, OutcomeFailed
	}
	return mealTypes, OutcomeOK
}
