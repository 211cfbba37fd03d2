package domain

type User struct {
	ID             int64    `json:"id"`
	Surname        string   `json:"surname"`
	Name           string   `json:"name"`
	Age            *int32   `json:"age"`
	Position       string   `json:"position"`
	Speciality     string   `json:"speciality"`
	Address        string   `json:"address"`
	Email          string   `json:"email"`
	HashedPassword string   `json:"-"`
	ModifiedDate   DateTime `json:"modified_date"`
}
