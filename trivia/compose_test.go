package trivia

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"triviahub/models"
)

func capitalsInput() SetInput {
	return SetInput{
		SetTitle:   "Capitals",
		Category:   "Geography",
		Difficulty: "easy",
		Questions: []QuestionInput{{
			QuestionText: "Capital of France?",
			QuestionType: models.QuestionTypeMultipleChoice,
			Options:      []OptionInput{{Text: "Paris"}, {Text: "Lyon"}, {Text: "Nice"}},
			CorrectIndex: 0,
		}},
	}
}

// flattenSet reduces a stored set to comparable (text, type, option text,
// correctness) tuples.
func flattenSet(set *models.TriviaSet) []string {
	var rows []string
	rows = append(rows, fmt.Sprintf("set|%s|%s|%s", set.SetTitle, set.Category, set.Difficulty))
	for _, q := range set.Questions {
		rows = append(rows, fmt.Sprintf("question|%s|%s", q.QuestionText, q.QuestionType))
		for _, opt := range q.Options {
			rows = append(rows, fmt.Sprintf("option|%s|%t", opt.Text, opt.IsCorrect))
		}
	}
	return rows
}

func TestCreateTriviaSetRoundTrip(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	const numQuestions = 3
	const numOptions = 4
	input := SetInput{
		SetTitle:   "Mixed Bag",
		Category:   "General",
		Difficulty: "medium",
	}
	for i := 0; i < numQuestions; i++ {
		q := QuestionInput{
			QuestionText: fmt.Sprintf("Question %d", i),
			QuestionType: models.QuestionTypeMultipleChoice,
			CorrectIndex: i % numOptions,
		}
		for j := 0; j < numOptions; j++ {
			q.Options = append(q.Options, OptionInput{Text: fmt.Sprintf("Option %d-%d", i, j)})
		}
		input.Questions = append(input.Questions, q)
	}

	created, err := s.CreateTriviaSet(owner.ID, input)
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}
	if created.PublicID == "" {
		t.Fatal("expected a public id")
	}
	if created.UserID != owner.ID {
		t.Errorf("set owned by %d, want %d", created.UserID, owner.ID)
	}

	set, err := s.GetTriviaSet(created.PublicID)
	if err != nil {
		t.Fatalf("GetTriviaSet: %v", err)
	}
	if len(set.Questions) != numQuestions {
		t.Fatalf("persisted %d questions, want %d", len(set.Questions), numQuestions)
	}
	for i, q := range set.Questions {
		if len(q.Options) != numOptions {
			t.Fatalf("question %d has %d options, want %d", i, len(q.Options), numOptions)
		}
		for j, opt := range q.Options {
			wantCorrect := j == i%numOptions
			if opt.IsCorrect != wantCorrect {
				t.Errorf("question %d option %d correctness = %t, want %t", i, j, opt.IsCorrect, wantCorrect)
			}
		}
	}
}

func TestCreateTriviaSetOpenEnded(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	set, err := s.CreateTriviaSet(owner.ID, SetInput{
		SetTitle:   "Authors",
		Category:   "Literature",
		Difficulty: "hard",
		Questions: []QuestionInput{{
			QuestionText: "Who wrote The Trial?",
			QuestionType: models.QuestionTypeOpenEnded,
			Answer:       "Kafka",
		}},
	})
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}

	if len(set.Questions) != 1 {
		t.Fatalf("persisted %d questions, want 1", len(set.Questions))
	}
	options := set.Questions[0].Options
	if len(options) != 1 {
		t.Fatalf("open-ended question has %d options, want 1", len(options))
	}
	if options[0].Text != "Kafka" || !options[0].IsCorrect {
		t.Errorf("accepted answer stored as (%q, %t), want (Kafka, true)", options[0].Text, options[0].IsCorrect)
	}
}

func TestCreateTriviaSetStopsAtEmptySlot(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	input := capitalsInput()
	input.Questions = append(input.Questions,
		QuestionInput{QuestionText: "   "}, // empty slot ends the sequence
		QuestionInput{
			QuestionText: "Capital of Spain?",
			QuestionType: models.QuestionTypeMultipleChoice,
			Options:      []OptionInput{{Text: "Madrid"}},
		},
	)

	set, err := s.CreateTriviaSet(owner.ID, input)
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}
	if len(set.Questions) != 1 {
		t.Fatalf("persisted %d questions, want 1 (slots after the blank one are ignored)", len(set.Questions))
	}
}

func TestCreateTriviaSetValidation(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	mutate := func(f func(*SetInput)) SetInput {
		input := capitalsInput()
		f(&input)
		return input
	}

	tests := []struct {
		name  string
		input SetInput
	}{
		{"missing title", mutate(func(in *SetInput) { in.SetTitle = " " })},
		{"missing category", mutate(func(in *SetInput) { in.Category = "" })},
		{"missing difficulty", mutate(func(in *SetInput) { in.Difficulty = "" })},
		{"no options", mutate(func(in *SetInput) { in.Questions[0].Options = nil })},
		{"correct index out of range", mutate(func(in *SetInput) { in.Questions[0].CorrectIndex = 3 })},
		{"negative correct index", mutate(func(in *SetInput) { in.Questions[0].CorrectIndex = -1 })},
		{"blank option text", mutate(func(in *SetInput) { in.Questions[0].Options[1].Text = " " })},
		{"unknown question type", mutate(func(in *SetInput) { in.Questions[0].QuestionType = "essay" })},
		{"open ended without answer", mutate(func(in *SetInput) {
			in.Questions[0].QuestionType = models.QuestionTypeOpenEnded
			in.Questions[0].Answer = ""
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreateTriviaSet(owner.ID, tt.input); !errors.Is(err, ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestEditTriviaSetReconciles(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	created, err := s.CreateTriviaSet(owner.ID, capitalsInput())
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}
	question := created.Questions[0]

	edit := SetInput{
		SetTitle:   "European Capitals",
		Category:   "Geography",
		Difficulty: "medium",
		Questions: []QuestionInput{
			{
				ID:           question.ID,
				QuestionText: "Capital of France, please?",
				QuestionType: models.QuestionTypeMultipleChoice,
				Options: []OptionInput{
					{ID: question.Options[0].ID, Text: "Paris"},
					{ID: question.Options[1].ID, Text: "Marseille"},
					// The third stored option is dropped; a new one is added.
					{Text: "Toulouse"},
				},
				CorrectIndex: 1,
			},
			{
				QuestionText: "Capital of Spain?",
				QuestionType: models.QuestionTypeMultipleChoice,
				Options:      []OptionInput{{Text: "Madrid"}, {Text: "Barcelona"}},
				CorrectIndex: 0,
			},
		},
	}

	updated, err := s.EditTriviaSet(owner.ID, created.PublicID, edit)
	if err != nil {
		t.Fatalf("EditTriviaSet: %v", err)
	}

	want := []string{
		"set|European Capitals|Geography|medium",
		"question|Capital of France, please?|multiple_choice",
		"option|Paris|false",
		"option|Marseille|true",
		"option|Toulouse|false",
		"question|Capital of Spain?|multiple_choice",
		"option|Madrid|true",
		"option|Barcelona|false",
	}
	if got := flattenSet(updated); !reflect.DeepEqual(got, want) {
		t.Errorf("edited set:\n got %q\nwant %q", got, want)
	}

	// The surviving option kept its identity.
	if updated.Questions[0].Options[0].ID != question.Options[0].ID {
		t.Error("expected the kept option to retain its id")
	}

	// Dropping a question removes it and its options.
	edit.Questions = edit.Questions[:1]
	updated, err = s.EditTriviaSet(owner.ID, created.PublicID, edit)
	if err != nil {
		t.Fatalf("EditTriviaSet (drop question): %v", err)
	}
	if len(updated.Questions) != 1 {
		t.Fatalf("set has %d questions after drop, want 1", len(updated.Questions))
	}
}

func TestEditTriviaSetRejectsForeignQuestion(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	first, err := s.CreateTriviaSet(owner.ID, capitalsInput())
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}
	second, err := s.CreateTriviaSet(owner.ID, capitalsInput())
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}

	edit := capitalsInput()
	edit.Questions[0].ID = first.Questions[0].ID // belongs to the other set

	if _, err := s.EditTriviaSet(owner.ID, second.PublicID, edit); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestEditAndDeleteRequireOwnership(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")
	intruder := registerTestUser(t, s, "mallory")

	created, err := s.CreateTriviaSet(owner.ID, capitalsInput())
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}
	before := flattenSet(created)

	edit := capitalsInput()
	edit.SetTitle = "Hijacked"
	if _, err := s.EditTriviaSet(intruder.ID, created.PublicID, edit); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("EditTriviaSet by non-owner: got %v, want ErrNotOwner", err)
	}
	if err := s.DeleteTriviaSet(intruder.ID, created.PublicID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("DeleteTriviaSet by non-owner: got %v, want ErrNotOwner", err)
	}

	// Nothing was modified.
	after, err := s.GetTriviaSet(created.PublicID)
	if err != nil {
		t.Fatalf("GetTriviaSet: %v", err)
	}
	if !reflect.DeepEqual(flattenSet(after), before) {
		t.Errorf("set changed after rejected mutations:\n got %q\nwant %q", flattenSet(after), before)
	}

	// Unknown public id reports not-found, not a permission error.
	if _, err := s.EditTriviaSet(owner.ID, "does-not-exist", edit); !errors.Is(err, ErrNotFound) {
		t.Errorf("EditTriviaSet on unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDeleteTriviaSetCascades(t *testing.T) {
	s := newTestService(t)
	owner := registerTestUser(t, s, "alice")

	created, err := s.CreateTriviaSet(owner.ID, capitalsInput())
	if err != nil {
		t.Fatalf("CreateTriviaSet: %v", err)
	}

	if err := s.DeleteTriviaSet(owner.ID, created.PublicID); err != nil {
		t.Fatalf("DeleteTriviaSet: %v", err)
	}

	if _, err := s.GetTriviaSet(created.PublicID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted set still resolves: %v", err)
	}

	var questions int64
	s.db.Model(&models.Question{}).Where("trivia_set_id = ?", created.ID).Count(&questions)
	if questions != 0 {
		t.Errorf("%d questions survived the cascade", questions)
	}
	var options int64
	s.db.Model(&models.Option{}).Count(&options)
	if options != 0 {
		t.Errorf("%d options survived the cascade", options)
	}
}
