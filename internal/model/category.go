package model

// Category 题目分类，静态参考数据
// swagger:model Category
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
