package filter

import "testing"

func testEngine() *Engine {
	return NewEngine(
		[]string{"java", "react", "node", "mysql"},
		[]string{"senior", "lead", "architect", "manager", "principal"},
	)
}

func TestEngine_Relevant(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        bool
	}{
		{
			name:  "inclusion keyword in title",
			title: "Java Developer Fresher",
			want:  true,
		},
		{
			name:        "inclusion keyword only in description",
			title:       "Software Developer",
			description: "Work with React and Node on a small team",
			want:        true,
		},
		{
			name:  "exclusion term rejects",
			title: "Senior Java Engineer",
			want:  false,
		},
		{
			name:        "exclusion dominates inclusion",
			title:       "Java Developer",
			description: "Reporting to the engineering lead manager",
			want:        false,
		},
		{
			name:  "no inclusion keyword rejects",
			title: "Embedded C Developer",
			want:  false,
		},
		{
			name:  "case insensitive",
			title: "JAVA DEVELOPER",
			want:  true,
		},
		{
			name:  "exclusion case insensitive",
			title: "PRINCIPAL react engineer",
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testEngine().Relevant(tt.title, tt.description); got != tt.want {
				t.Errorf("Relevant(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestEngine_EmptyInclusionSetRejectsEverything(t *testing.T) {
	e := NewEngine(nil, []string{"senior"})
	if e.Relevant("Java Developer", "") {
		t.Error("empty inclusion set must reject; inclusion is not optional")
	}
}
