package model

import "time"

// sync with :: the main server's role tables, source of truth for role names.

type UserToRole struct {
	UserId int64 `gorm:"column:userId;type:integer;primaryKey"`
	RoleId int64 `gorm:"column:roleId;type:integer;primaryKey"`
}

func (UserToRole) TableName() string {
	return "UserToRole"
}

//------------------------------------------
//------------------------------------------

type Role struct {
	Id          int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;"`
	Name        string    `gorm:"column:name;type:text;not null;uniqueIndex:Role_name_key"`
	Description string    `gorm:"column:description;type:text;default:\"\";not null;"`
	CreatedAt   time.Time `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;type:timestamp(3);not null;"`

	Users []UserToRole `gorm:"foreignKey:RoleId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Role) TableName() string {
	return "Role"
}

//------------------------------------------
//------------------------------------------

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
