package aggregate

import (
	"testing"
)

func TestJoinSQL(t *testing.T) {
	tests := []struct {
		name string
		join Join
		want string
	}{
		{
			name: "subscriber listing join",
			join: Join{
				Source:      "subscriptions",
				SourceMatch: "channel_id",
				SourceKey:   "subscriber_id",
				Target:      "users",
				TargetKey:   "id",
				Fields:      []string{"username", "fullname", "avatar"},
				OrderBy:     "s.created_at, s.id",
			},
			want: "SELECT t.username, t.fullname, t.avatar FROM subscriptions s INNER JOIN users t ON t.id = s.subscriber_id WHERE s.channel_id = $1 ORDER BY s.created_at, s.id",
		},
		{
			name: "channel listing join",
			join: Join{
				Source:      "subscriptions",
				SourceMatch: "subscriber_id",
				SourceKey:   "channel_id",
				Target:      "users",
				TargetKey:   "id",
				Fields:      []string{"username", "avatar"},
				OrderBy:     "s.created_at, s.id",
			},
			want: "SELECT t.username, t.avatar FROM subscriptions s INNER JOIN users t ON t.id = s.channel_id WHERE s.subscriber_id = $1 ORDER BY s.created_at, s.id",
		},
		{
			name: "no ordering",
			join: Join{
				Source:      "comments",
				SourceMatch: "video_id",
				SourceKey:   "owner_id",
				Target:      "users",
				TargetKey:   "id",
				Fields:      []string{"username"},
			},
			want: "SELECT t.username FROM comments s INNER JOIN users t ON t.id = s.owner_id WHERE s.video_id = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.join.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
