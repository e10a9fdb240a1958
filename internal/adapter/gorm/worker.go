package gorm

import "github.com/bornholm/workers/internal/core/model"

// Birth is a distinct birth year, shared by all the workers born that year.
type Birth struct {
	ID   uint `gorm:"column:date_id;primaryKey;autoIncrement"`
	Year int  `gorm:"column:birth_date;not null"`
}

func (Birth) TableName() string {
	return "birth"
}

type Worker struct {
	ID     uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:user_name;not null"`
	Number string `gorm:"column:user_number;not null"`

	DateID uint   `gorm:"column:date_id;not null"`
	Birth  *Birth `gorm:"foreignKey:DateID"`
}

func (Worker) TableName() string {
	return "users"
}

// workerRow is the shape of a worker joined with its birth year
type workerRow struct {
	Name   string
	Number string
	Year   int
}

func toWorker(r workerRow) model.Worker {
	return model.Worker{
		Name:   r.Name,
		Number: r.Number,
		Year:   r.Year,
	}
}
