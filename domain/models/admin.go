package models

import "time"

// Admin คือบัญชีผู้ดูแลระบบ (สร้างจากภายนอก ระบบนี้อ่านอย่างเดียว)
type Admin struct {
	ID        int64   `gorm:"column:id_admin;primaryKey;autoIncrement" json:"id_admin"`
	LastName  *string `gorm:"column:nom_admin;size:255" json:"nom_admin"`
	FirstName *string `gorm:"column:prenom_admin;size:255" json:"prenom_admin"`
	Email     *string `gorm:"column:mail_admin;size:255;index" json:"mail_admin"`
	Handle    *string `gorm:"column:pseudo_admin;size:255;index" json:"pseudo_admin"`
	Password  string  `gorm:"column:pwd_admin;size:255;not null" json:"-"`
	Rights    *int    `gorm:"column:droits_admin" json:"droits_admin"`
}

func (Admin) TableName() string {
	return "admin"
}

// AdminSession is the verified identity attached to a guarded request.
type AdminSession struct {
	AdminID    int64
	VerifiedAt time.Time
}
