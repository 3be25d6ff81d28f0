package services

import "testing"

func TestParseItinerary(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantIDs []int64
		wantErr bool
	}{
		{
			name:    "plain json",
			text:    `{"trip_name":"T","description":"D","selected_place_ids":[3,1,2]}`,
			wantIDs: []int64{3, 1, 2},
		},
		{
			name: "fenced json",
			text: "```json\n{\"trip_name\":\"T\",\"description\":\"D\",\"selected_place_ids\":[5]}\n```",
			wantIDs: []int64{5},
		},
		{
			name:    "string ids",
			text:    `{"trip_name":"T","selected_place_ids":["7","8","oops"]}`,
			wantIDs: []int64{7, 8},
		},
		{
			name:    "not json",
			text:    "Sorry, I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseItinerary(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseItinerary: %v", err)
			}
			if len(got.SelectedPlaceIDs) != len(tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", got.SelectedPlaceIDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got.SelectedPlaceIDs[i] != id {
					t.Errorf("ids[%d] = %d, want %d", i, got.SelectedPlaceIDs[i], id)
				}
			}
		})
	}
}
