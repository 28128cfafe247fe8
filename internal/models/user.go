package models

type User struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	CanSell            bool   `json:"canSell"`
	CanProvideServices bool   `json:"canProvideServices"`
	Specialization     string `json:"specialization"`
}

func (u User) GetID() uint { return u.ID }

// LegacySeller is the record shape kept under the old "vendedores" key.
type LegacySeller struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SessionUser is what gets written to "currentUser" on login.
type SessionUser struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	CanSell            bool   `json:"canSell"`
	CanProvideServices bool   `json:"canProvideServices"`
	Specialization     string `json:"specialization"`
}
