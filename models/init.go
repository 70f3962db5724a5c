package models

import (
	"photovault/db"
)

func Init() {
	if err := db.Instance.AutoMigrate(&User{}, &Album{}, &Photo{}, &Video{}); err != nil {
		panic(err)
	}
}
