package events

import "testing"

func TestStyleFor(t *testing.T) {
	cases := []struct {
		tag    string
		colors [2]string
		icon   Icon
	}{
		{"APPOINTMENT", [2]string{"#4CAF50", "#388E3C"}, Icon{"FontAwesome5", "clinic-medical"}},
		{"GROOMING", [2]string{"#FF4081", "#F50057"}, Icon{"MaterialIcons", "content-cut"}},
		{"PRESCRIPTION", [2]string{"#2196F3", "#1976D2"}, Icon{"FontAwesome5", "pills"}},
		{"OTHER", [2]string{"#673AB7", "#512DA8"}, Icon{"FontAwesome5", "paw"}},
		{"", [2]string{"#673AB7", "#512DA8"}, Icon{"FontAwesome5", "paw"}},
		{"VACCINE", [2]string{"#673AB7", "#512DA8"}, Icon{"FontAwesome5", "paw"}},
		{"grooming", [2]string{"#673AB7", "#512DA8"}, Icon{"FontAwesome5", "paw"}},
	}

	for _, tc := range cases {
		got := StyleFor(tc.tag)
		if got.Colors != tc.colors {
			t.Fatalf("StyleFor(%q) colors = %v, want %v", tc.tag, got.Colors, tc.colors)
		}
		if got.Icon != tc.icon {
			t.Fatalf("StyleFor(%q) icon = %+v, want %+v", tc.tag, got.Icon, tc.icon)
		}
	}
}

func TestEventStyleUsesType(t *testing.T) {
	e := Event{Type: EventTypeGrooming}
	if e.Style().Icon.Name != "content-cut" {
		t.Fatalf("expected grooming icon, got %+v", e.Style().Icon)
	}
}
