package model

// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"` // bcrypt 摘要，永不外泄
}

func (User) TableName() string {
	return "users"
}
