package model

// Person 人员档案表 — 对应 people
// 姓名是全局唯一的查找键；重命名通过独立操作完成，id 不变
type Person struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"        json:"id"`
	Name string `gorm:"type:varchar(200);not null;uniqueIndex:uq_people_name" json:"name"`
	BaseModel
}

// TableName 指定表名
func (Person) TableName() string { return "people" }
