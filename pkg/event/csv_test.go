package event

import (
	"strings"
	"testing"

	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Run("writes header and quoted rows", func(t *testing.T) {
		events := []model.Event{
			{
				Title:        "Team sync",
				EventDate:    model.NewDate(2024, 5, 11),
				StartTime:    model.NewTimeOfDay(9, 0),
				EndTime:      model.NewTimeOfDay(9, 30),
				Location:     "Office",
				Category:     "Work",
				ContactPhone: "555-0100",
			},
		}

		var b strings.Builder
		require.NoError(t, WriteCSV(&b, events))

		lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Title,Date,Start Time,End Time,Location,Category,Phone", lines[0])
		assert.Equal(t, `"Team sync",2024-05-11,09:00,09:30,"Office","Work","555-0100"`, lines[1])
	})

	t.Run("doubles embedded quotes", func(t *testing.T) {
		events := []model.Event{
			{
				Title:     `The "big" one`,
				EventDate: model.NewDate(2024, 5, 11),
				StartTime: model.NewTimeOfDay(9, 0),
				EndTime:   model.NewTimeOfDay(10, 0),
				Category:  "Meeting",
			},
		}

		var b strings.Builder
		require.NoError(t, WriteCSV(&b, events))

		assert.Contains(t, b.String(), `"The ""big"" one"`)
	})

	t.Run("empty fields stay quoted", func(t *testing.T) {
		events := []model.Event{
			{
				Title:     "Bare",
				EventDate: model.NewDate(2024, 5, 11),
				StartTime: model.NewTimeOfDay(9, 0),
				EndTime:   model.NewTimeOfDay(10, 0),
				Category:  "Other",
			},
		}

		var b strings.Builder
		require.NoError(t, WriteCSV(&b, events))

		assert.Contains(t, b.String(), `"Bare",2024-05-11,09:00,10:00,"","Other",""`)
	})
}
