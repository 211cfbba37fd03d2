package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Date 只保留日期部分，序列化为 YYYY-MM-DD
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("无效的日期: %s", s)
	}

	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func (d *Date) Scan(value any) error {
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("无法将 %T 扫描为 Date", value)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// DateTime 序列化为 YYYY-MM-DD HH:MM:SS
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("无效的时间: %s", s)
	}

	t, err := time.Parse(DateTimeLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func (d *DateTime) Scan(value any) error {
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("无法将 %T 扫描为 DateTime", value)
	}
	d.Time = t
	return nil
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}
