package domain

// RoleSuperAdmin is the role id that gates employee management endpoints.
const RoleSuperAdmin int64 = 1

type Role struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name;size:50;uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }

type Employee struct {
	ID           int64   `json:"id" gorm:"column:id;primaryKey"`
	FirstName    string  `json:"first_name" gorm:"column:first_name;size:50;not null"`
	LastName     string  `json:"last_name" gorm:"column:last_name;size:50;not null"`
	Email        string  `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	PasswordHash string  `json:"-" gorm:"column:password_hash;size:100;not null"`
	RoleID       *int64  `json:"role_id" gorm:"column:role_id;index"`
	BranchID     *int64  `json:"branch_id" gorm:"column:branch_id;index"`

	Role   *Role   `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

func (Employee) TableName() string { return "employees" }
