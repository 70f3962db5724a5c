package models

import (
	"photovault/db"
	"photovault/storage"
	"photovault/utils"
)

const saltSize = 60

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int
	UpdatedAt int
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
	BucketID  *uint64
	Bucket    storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func UserCreate(name, email, plainTextPassword string) (u User, err error) {
	if name == "" || email == "" || plainTextPassword == "" {
		return User{}, ErrInvalid
	}
	u.Email = email
	u.Name = name
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	if store := storage.GetDefaultStorage(); store != nil {
		u.BucketID = &store.GetBucket().ID
	}
	return u, db.Instance.Create(&u).Error
}

func UserLogin(email, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}
