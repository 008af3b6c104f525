package model

// Question 单选题，四个选项，正确选项标记只在服务端使用
// swagger:model Question
type Question struct {
	BaseModel
	CategoryID   uint   `gorm:"index;not null" json:"category_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	OptionA      string `gorm:"size:255;not null" json:"option_a"`
	OptionB      string `gorm:"size:255;not null" json:"option_b"`
	OptionC      string `gorm:"size:255;not null" json:"option_c"`
	OptionD      string `gorm:"size:255;not null" json:"option_d"`
	// 正确选项字母（a/b/c/d），出题接口绝不下发
	CorrectAnswer string `gorm:"size:1;not null" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
