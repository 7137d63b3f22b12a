package dashboard

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/domain"
	"github.com/vfg2006/analytics-hub/internal/summary"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(domain.DefaultSeed(testNow, nil), Options{Now: func() time.Time { return testNow }})
}

func TestNewStore(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.IsLoading())
	assert.Equal(t, domain.DefaultMetrics(), s.Metrics())
	assert.Len(t, s.Activity(), 5)
	assert.Len(t, s.Alerts(), 3)
	assert.Equal(t, 2, s.UnreadAlertCount())
	assert.Equal(t, "1", s.Alerts()[0].ID)
	assert.Len(t, s.Campaigns(), 8)
}

func TestStore_ReadersGetCopies(t *testing.T) {
	s := newTestStore()

	metrics := s.Metrics()
	metrics[0].Value = "alterado"
	alerts := s.Alerts()
	alerts[0].IsRead = true
	campaigns := s.Campaigns()
	campaigns[0].Campaign = "alterado"

	assert.Equal(t, "$2,847,950", s.Metrics()[0].Value)
	assert.False(t, s.Alerts()[0].IsRead)
	assert.Equal(t, "Summer Sale 2024", s.Campaigns()[0].Campaign)
}

func TestStore_UpdateMetrics(t *testing.T) {
	s := newTestStore()

	out := s.UpdateMetrics(func(current []domain.MetricRecord) []domain.MetricRecord {
		current[0].Value = "$1"
		return current[:1]
	})

	assert.Len(t, out, 1)
	assert.Equal(t, out, s.Metrics())
}

func TestStore_BuffersAreBounded(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 50; i++ {
		s.PushActivity(domain.ActivityRecord{ID: "a" + strconv.Itoa(i)})
		s.PushAlert(domain.AlertRecord{ID: "b" + strconv.Itoa(i)})

		assert.LessOrEqual(t, s.ActivityLen(), DefaultActivityCapacity)
		assert.LessOrEqual(t, s.AlertsLen(), DefaultAlertCapacity)
	}

	activity := s.Activity()
	assert.Equal(t, "a49", activity[0].ID)
	assert.Equal(t, "a30", activity[len(activity)-1].ID)

	alerts := s.Alerts()
	assert.Equal(t, "b49", alerts[0].ID)
	assert.Equal(t, "b40", alerts[len(alerts)-1].ID)
}

func TestStore_AlertActions(t *testing.T) {
	tests := []struct {
		name       string
		action     func(s *Store) error
		wantErr    error
		wantUnread int
		wantLen    int
	}{
		{
			name:       "Marcar como lido",
			action:     func(s *Store) error { return s.MarkAlertRead("1") },
			wantUnread: 1,
			wantLen:    3,
		},
		{
			name:       "Marcar como lido um alerta já lido",
			action:     func(s *Store) error { return s.MarkAlertRead("3") },
			wantUnread: 2,
			wantLen:    3,
		},
		{
			name:       "Marcar alerta inexistente",
			action:     func(s *Store) error { return s.MarkAlertRead("999") },
			wantErr:    ErrAlertNotFound,
			wantUnread: 2,
			wantLen:    3,
		},
		{
			name:       "Dispensar alerta",
			action:     func(s *Store) error { return s.DismissAlert("2") },
			wantUnread: 1,
			wantLen:    2,
		},
		{
			name:       "Dispensar alerta inexistente",
			action:     func(s *Store) error { return s.DismissAlert("999") },
			wantErr:    ErrAlertNotFound,
			wantUnread: 2,
			wantLen:    3,
		},
		{
			name:       "ID vazio",
			action:     func(s *Store) error { return s.DismissAlert("") },
			wantErr:    ErrAlertIDEmpty,
			wantUnread: 2,
			wantLen:    3,
		},
		{
			name: "Marcar todos como lidos",
			action: func(s *Store) error {
				if n := s.MarkAllAlertsRead(); n != 2 {
					return errors.New("esperava 2 alterados, obteve " + strconv.Itoa(n))
				}
				return nil
			},
			wantUnread: 0,
			wantLen:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()

			err := tt.action(s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var alertErr *AlertError
				assert.ErrorAs(t, err, &alertErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantUnread, s.UnreadAlertCount())
			assert.Len(t, s.Alerts(), tt.wantLen)
		})
	}
}

func TestStore_DismissKeepsOrder(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.DismissAlert("2"))

	alerts := s.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "1", alerts[0].ID)
	assert.Equal(t, "3", alerts[1].ID)
}

func TestStore_Snapshot(t *testing.T) {
	s := newTestStore()
	s.SetLoading(false)

	snap := s.Snapshot()

	assert.False(t, snap.Loading)
	assert.Equal(t, 2, snap.UnreadCount)
	assert.Len(t, snap.Metrics, 4)
	assert.Equal(t, testNow, snap.TakenAt)
}

func TestStore_UnreadMatchesSummary(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 12; i++ {
		s.PushAlert(domain.AlertRecord{ID: "n" + strconv.Itoa(i), IsRead: i%3 == 0})
		assert.Equal(t, summary.UnreadAlerts(s.Alerts()), s.UnreadAlertCount())
	}

	assert.Equal(t, 7, s.UnreadAlertCount())
	assert.Equal(t, s.UnreadAlertCount(), s.Snapshot().UnreadCount)
}

func TestStore_Events(t *testing.T) {
	s := newTestStore()
	events, cancel := s.Events().Subscribe(10)
	defer cancel()

	s.SetLoading(false)
	s.SetLoading(false) // sem mudança, sem evento
	s.PushActivity(domain.ActivityRecord{ID: "x"})
	require.NoError(t, s.MarkAlertRead("1"))

	var kinds []EventKind
	for i := 0; i < 3; i++ {
		kinds = append(kinds, (<-events).Kind)
	}
	assert.Equal(t, []EventKind{EventLoading, EventActivity, EventAlerts}, kinds)
	assert.Empty(t, events)
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	_, cancel := b.Subscribe(1)

	for i := 0; i < 5; i++ {
		b.Publish(Event{Kind: EventMetrics})
	}

	assert.Equal(t, uint64(4), b.Dropped())
	assert.Equal(t, 1, b.Subscribers())

	cancel()
	cancel()
	assert.Equal(t, 0, b.Subscribers())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := strconv.Itoa(i) + "-" + strconv.Itoa(j)
				s.PushActivity(domain.ActivityRecord{ID: id})
				s.PushAlert(domain.AlertRecord{ID: id})
				_ = s.MarkAlertRead(id)
				_ = s.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, DefaultActivityCapacity, s.ActivityLen())
	assert.Equal(t, DefaultAlertCapacity, s.AlertsLen())
}
