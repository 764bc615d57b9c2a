package models

// User is the driver's own identity record from GetMainUserById, cached in
// the local state store for the lifetime of the session.
type User struct {
	UserID                string  `json:"userId"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	Email                 string  `json:"email"`
	EmailConfirmed        bool    `json:"emailConfirmed"`
	PhoneNumber           string  `json:"phoneNumber"`
	PhoneNumberConfirmed  bool    `json:"phoneNumberConfirmed"`
	TwoFactorEnabled      bool    `json:"twoFactorEnabled"`
	LockoutEnd            *string `json:"lockoutEnd"`
	LockoutEnabled        bool    `json:"lockoutEnabled"`
	AccessFailedCount     int     `json:"accessFailedCount"`
	Avatar                *string `json:"avatar"`
	PrimaryDispatcherID   string  `json:"primaryDispatcherId"`
	PrimaryDispatcherName string  `json:"primaryDispatcherName"`
	EmploymentTypeID      *string `json:"employmentTypeId"`
	EmploymentTypeName    *string `json:"employmentTypeName"`
	OperationTypeID       *string `json:"operationTypeId"`
	OperationTypeName     *string `json:"operationTypeName"`
	Address               string  `json:"address"`
	PrimaryTerminalID     *string `json:"primaryTerminalId"`
	PrimaryTerminalName   *string `json:"primaryTerminalName"`
	EcFirstName           *string `json:"ecFirstName"`
	EcLastName            string  `json:"ecLastName"`
	EcPhoneNumber         string  `json:"ecPhoneNumber"`
	EcMail                *string `json:"ecMail"`
	EcAddress             string  `json:"ecAddress"`
	Role                  string  `json:"role"`
	TeamDriverID          int     `json:"teamDriverId"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
