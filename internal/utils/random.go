package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/colonyops/mission-manager/backend/internal/domain"
)

var commonSurnames = []string{
	"Watney", "Lewis", "Martinez", "Johanssen", "Beck", "Vogel",
	"Sanders", "Kapoor", "Henderson", "Montrose", "Park", "Ng",
}
var commonNames = []string{
	"Mark", "Melissa", "Rick", "Beth", "Chris", "Alex",
	"Teddy", "Venkat", "Mitch", "Bruce", "Annie", "Mindy",
}
var positions = []string{"Commander", "Pilot", "Engineer", "Botanist", "Doctor", "Geologist"}
var specialities = []string{"navigation", "life support", "mechanics", "biology", "medicine", "geology"}
var jobTitles = []string{
	"Deployment of residential modules",
	"Exploration of mineral resources",
	"Installation of solar panels",
	"Water extraction from subsurface ice",
	"Greenhouse assembly",
	"Rover maintenance",
}

func GenerateRandomUser() *domain.User {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	name := commonNames[rand.Intn(len(commonNames))]
	age := int32(rand.Intn(40) + 20)

	return &domain.User{
		Surname:        surname,
		Name:           name,
		Age:            &age,
		Position:       positions[rand.Intn(len(positions))],
		Speciality:     specialities[rand.Intn(len(specialities))],
		Address:        fmt.Sprintf("module_%d", rand.Intn(10)+1),
		Email:          fmt.Sprintf("%s.%s%d@mars.test", strings.ToLower(name), strings.ToLower(surname), rand.Intn(1000)),
		HashedPassword: fmt.Sprintf("hashed_password_%d", rand.Intn(1000)),
		ModifiedDate:   domain.DateTime{Time: time.Now()},
	}
}

func GenerateRandomJob(id int64) *domain.Job {
	teamLeader := int64(rand.Intn(10) + 1)
	startDate := domain.Date{Time: time.Now().AddDate(0, 0, -rand.Intn(30))}
	endDate := domain.Date{Time: time.Now().AddDate(0, 0, rand.Intn(60)+1)}

	collaborators := make([]string, rand.Intn(3)+1)
	for i := range collaborators {
		collaborators[i] = fmt.Sprintf("%d", rand.Intn(10)+1)
	}

	return &domain.Job{
		ID:            id,
		Job:           jobTitles[rand.Intn(len(jobTitles))],
		TeamLeader:    &teamLeader,
		WorkSize:      int32(rand.Intn(20) + 1),
		Collaborators: strings.Join(collaborators, ","),
		StartDate:     &startDate,
		EndDate:       &endDate,
		IsFinished:    rand.Intn(2) == 0,
	}
}
