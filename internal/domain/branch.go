package domain

type Branch struct {
	ID      int64   `json:"id" gorm:"column:id;primaryKey"`
	Name    string  `json:"name" gorm:"column:name;size:100;not null;index"`
	Address string  `json:"address" gorm:"column:address;size:255;not null"`
	Phone   *string `json:"phone,omitempty" gorm:"column:phone;size:20"`
}

func (Branch) TableName() string { return "branches" }
