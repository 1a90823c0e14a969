package client

import (
	"time"

	"cyrusbot/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type MysqlClient struct {
	*gorm.DB
}

func newMysqlClient(url string) (ArchiveClient, error) {
	db, err := gorm.Open(mysql.Open(url), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Second * 600)
	if err := db.AutoMigrate(&model.MysqlViolation{}); err != nil {
		return nil, err
	}
	return &MysqlClient{DB: db}, err
}

func (m *MysqlClient) AddViolation(v *model.Violation) error {
	_v := &model.MysqlViolation{
		Time:     v.Time.UTC().Format("2006-01-02 15:04:05"),
		UserID:   v.UserID,
		Username: v.Username,
		Reason:   v.Reason,
		Detail:   v.Detail,
	}
	if err := m.Create(_v).Error; err != nil {
		return err
	}
	return nil
}

func (m *MysqlClient) SearchViolations(userID int64) ([]*model.Violation, error) {
	var _violations []model.MysqlViolation
	err := m.Where("user_id = ?", userID).Limit(searchLimit).Find(&_violations).Error
	if err != nil {
		return nil, err
	}
	var violations []*model.Violation
	for _, item := range _violations {
		t, _ := time.Parse("2006-01-02 15:04:05", item.Time)
		v := model.ViolationPool.Get().(*model.Violation)
		v.Time = t
		v.UserID = item.UserID
		v.Username = item.Username
		v.Reason = item.Reason
		v.Detail = item.Detail
		violations = append(violations, v)
		model.ViolationPool.Put(v)
	}
	return violations, nil
}
