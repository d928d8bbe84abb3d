package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email         string   `gorm:"size:100;unique;not null" json:"email"`
	Username      string   `gorm:"size:100;unique;not null" json:"username"`
	FullName      string   `gorm:"size:255" json:"fullName"`
	Password      string   `gorm:"size:100;not null" json:"-"`
	Role          UserRole `gorm:"size:20;default:'user'" json:"role"`
	Avatar        string   `gorm:"size:255;default:'/avatar.jpg'" json:"avatar"`
	HardnessIndex float64  `gorm:"default:1.0" json:"hardnessIndex"`
	IsActive      bool     `gorm:"default:true" json:"isActive"`
}

func (User) TableName() string {
	return "users"
}
