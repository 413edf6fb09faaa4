package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout é o formato fixo de aniocreacion no contrato JSON.
const DateLayout = "2006-01-02"

// Date serializa apenas a parte de data. Valor zero vira null.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// Aceita "2006-01-02", RFC3339 (só a data é mantida), null ou "".
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("aniocreacion: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = NewDate(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("aniocreacion: expected %s, got %q", DateLayout, s)
	}
	*d = NewDate(t)
	return nil
}
