package present

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/smstx/internal/model"
)

func txn(id string, year int, month time.Month, day int) model.Transaction {
	return model.Transaction{ID: id, Date: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func keys(items []model.DisplayItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}

func TestGroup_FirstSeenDayOrder(t *testing.T) {
	g := NewGrouper(English, nil)
	items := g.Group([]model.Transaction{
		txn("a", 2024, time.March, 12),
		txn("b", 2024, time.March, 10),
		txn("c", 2024, time.March, 12),
	})

	assert.Equal(t, []string{"12 March", "a", "c", "10 March", "b"}, keys(items))

	sep, ok := items[0].(model.DateSeparator)
	require.True(t, ok)
	assert.Equal(t, "12 March", sep.Label)

	entry, ok := items[1].(model.TransactionEntry)
	require.True(t, ok)
	assert.Equal(t, "a", entry.ID)
}

func TestGroup_KeepsInputOrderWithinDay(t *testing.T) {
	g := NewGrouper(English, nil)
	later := model.Transaction{ID: "later", Date: time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC)}
	earlier := model.Transaction{ID: "earlier", Date: time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)}

	items := g.Group([]model.Transaction{later, earlier})
	assert.Equal(t, []string{"12 March", "later", "earlier"}, keys(items))
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, NewGrouper(English, nil).Group(nil))
}

func TestGroup_Russian(t *testing.T) {
	g := NewGrouper(Russian, nil)
	items := g.Group([]model.Transaction{txn("a", 2024, time.March, 12), txn("b", 2024, time.May, 1)})
	assert.Equal(t, []string{"12 марта", "a", "1 мая", "b"}, keys(items))
}

func TestLabel_RussianGenitiveEveryMonth(t *testing.T) {
	want := []string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	g := NewGrouper(Russian, nil)
	for i, month := range want {
		at := time.Date(2024, time.Month(i+1), 5, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "5 "+month, g.Label(at))
	}
}

func TestGroup_LabelIgnoresYear(t *testing.T) {
	// Labels carry no year, so the same day in two years shares a group.
	g := NewGrouper(English, nil)
	items := g.Group([]model.Transaction{txn("a", 2023, time.March, 12), txn("b", 2024, time.March, 12)})
	assert.Equal(t, []string{"12 March", "a", "b"}, keys(items))
}

func TestLabel_TimeZone(t *testing.T) {
	minsk := time.FixedZone("MSK", 3*60*60)
	at := time.Date(2024, 3, 11, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "11 March", NewGrouper(English, nil).Label(at))
	assert.Equal(t, "12 March", NewGrouper(English, minsk).Label(at))
}

func TestLocale(t *testing.T) {
	tests := []struct {
		code string
		want monday.Locale
	}{
		{"en", English},
		{"EN", English},
		{"en-US", English},
		{"ru", Russian},
		{"ru_BY", Russian},
	}
	for _, tt := range tests {
		got, err := Locale(tt.code)
		require.NoError(t, err, "Locale(%q)", tt.code)
		assert.Equal(t, tt.want, got)
	}

	_, err := Locale("de")
	assert.Error(t, err)
}
