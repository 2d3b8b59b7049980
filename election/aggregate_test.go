// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election_test

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"testing"

	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/models"
	"github.com/danielhkuo/election/testutil"
)

type fixture struct {
	alice, bob, carol, dave, eve int64
}

// seedTallies creates five candidates, three of which have votes:
//
//	Bob   (Red,   male)   7
//	Alice (Blue,  female) 5
//	Carol (Blue,  female) 5
//	Dave  (Green, male)   0
//	Eve   (Yellow, female) 0
func seedTallies(t *testing.T, db *sql.DB) fixture {
	t.Helper()

	var f fixture
	f.alice = testutil.CreateTestCandidate(t, db, "Alice", "Blue", "female")
	f.bob = testutil.CreateTestCandidate(t, db, "Bob", "Red", "male")
	f.carol = testutil.CreateTestCandidate(t, db, "Carol", "Blue", "female")
	f.dave = testutil.CreateTestCandidate(t, db, "Dave", "Green", "male")
	f.eve = testutil.CreateTestCandidate(t, db, "Eve", "Yellow", "female")

	user := testutil.CreateTestUser(t, db, "900000000001", 100)
	testutil.AddTestVotes(t, db, user, f.alice, "trust", 3)
	testutil.AddTestVotes(t, db, user, f.alice, "vision", 2)
	testutil.AddTestVotes(t, db, user, f.bob, "change", 4)
	testutil.AddTestVotes(t, db, user, f.bob, "trust", 1)
	testutil.AddTestVotes(t, db, user, f.bob, "bold", 2)
	testutil.AddTestVotes(t, db, user, f.carol, "kind", 5)

	return f
}

func resultIDs(results []models.CandidateResult) []int64 {
	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestOverallResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)

	results, err := engine.OverallResults(context.Background())
	if err != nil {
		t.Fatalf("OverallResults() error = %v", err)
	}

	// Ties keep id order; zero-vote candidates are last, not missing
	wantIDs := []int64{f.bob, f.alice, f.carol, f.dave, f.eve}
	if got := resultIDs(results); !reflect.DeepEqual(got, wantIDs) {
		t.Fatalf("Expected order %v, got %v", wantIDs, got)
	}

	wantCounts := []int{7, 5, 5, 0, 0}
	for i, r := range results {
		if r.VoteCount != wantCounts[i] {
			t.Errorf("%s: expected %d votes, got %d", r.Name, wantCounts[i], r.VoteCount)
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i-1].VoteCount < results[i].VoteCount {
			t.Errorf("Results not sorted descending at %d", i)
		}
	}

	if results[0].PoliticalParty != "Red" || results[0].Sex != "male" || results[0].Name != "Bob" {
		t.Errorf("Candidate columns not populated: %+v", results[0])
	}
}

func TestOverallResults_NoCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	results, err := newTestEngine(t, db).OverallResults(context.Background())
	if err != nil {
		t.Fatalf("OverallResults() error = %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("Expected empty non-nil results, got %v", results)
	}
}

func TestTop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)
	ctx := context.Background()

	tests := []struct {
		n    int
		want []int64
	}{
		{1, []int64{f.bob}},
		{3, []int64{f.bob, f.alice, f.carol}},
		{10, []int64{f.bob, f.alice, f.carol, f.dave, f.eve}},
		{0, []int64{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("top %d", tt.n), func(t *testing.T) {
			results, err := engine.Top(ctx, tt.n)
			if err != nil {
				t.Fatalf("Top() error = %v", err)
			}
			if got := resultIDs(results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBottom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)
	ctx := context.Background()

	tests := []struct {
		name string
		n    int
		want []int64
	}{
		{"default is one", 0, []int64{f.eve}},
		{"one", 1, []int64{f.eve}},
		{"two", 2, []int64{f.eve, f.dave}},
		{"all, reversed overall order", 5, []int64{f.eve, f.dave, f.carol, f.alice, f.bob}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := engine.Bottom(ctx, tt.n)
			if err != nil {
				t.Fatalf("Bottom() error = %v", err)
			}
			if got := resultIDs(results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBottom_ZeroVoteCandidateIsLowest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)

	a := testutil.CreateTestCandidate(t, db, "A", "Blue", "male")
	b := testutil.CreateTestCandidate(t, db, "B", "Red", "female")
	user := testutil.CreateTestUser(t, db, "910000000001", 10)
	testutil.AddTestVotes(t, db, user, a, "good", 10)

	results, err := engine.Bottom(context.Background(), 1)
	if err != nil {
		t.Fatalf("Bottom() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != b || results[0].VoteCount != 0 {
		t.Errorf("Expected candidate B with 0 votes, got %+v", results)
	}
}

func TestVoiceOfSupporters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)
	ctx := context.Background()

	tests := []struct {
		name string
		ids  []int64
		want []string
	}{
		{"empty set", []int64{}, []string{}},
		{"nil set", nil, []string{}},
		{"single candidate", []int64{f.alice}, []string{"trust", "vision"}},
		{"union, ties by keyword", []int64{f.alice, f.bob}, []string{"change", "trust", "bold", "vision"}},
		{"party of two", []int64{f.alice, f.carol}, []string{"kind", "trust", "vision"}},
		{"candidate without votes", []int64{f.dave}, []string{}},
		{"unknown candidate", []int64{12345}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keywords, err := engine.VoiceOfSupporters(ctx, tt.ids)
			if err != nil {
				t.Fatalf("VoiceOfSupporters() error = %v", err)
			}
			if !reflect.DeepEqual(keywords, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, keywords)
			}
		})
	}
}

func TestVoiceOfSupporters_LimitedToTen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)

	c := testutil.CreateTestCandidate(t, db, "Ivan", "Blue", "male")
	user := testutil.CreateTestUser(t, db, "920000000001", 100)
	for i := 0; i < 12; i++ {
		// k00 gets 12 votes, k11 gets 1
		testutil.AddTestVotes(t, db, user, c, fmt.Sprintf("k%02d", i), 12-i)
	}

	keywords, err := engine.VoiceOfSupporters(context.Background(), []int64{c})
	if err != nil {
		t.Fatalf("VoiceOfSupporters() error = %v", err)
	}
	if len(keywords) != 10 {
		t.Fatalf("Expected 10 keywords, got %d", len(keywords))
	}
	if keywords[0] != "k00" || keywords[9] != "k09" {
		t.Errorf("Expected k00..k09, got %v", keywords)
	}
}

// A ballot worth three votes weighs three times in the keyword tally.
func TestVoiceOfSupporters_MultiVoteBallotWeight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	ctx := context.Background()

	c := testutil.CreateTestCandidate(t, db, "Judy", "Red", "female")
	testutil.CreateTestUser(t, db, "930000000001", 3)
	testutil.CreateTestUser(t, db, "930000000002", 1)
	testutil.CreateTestUser(t, db, "930000000003", 1)

	ballots := []models.CastRequest{
		{Mynumber: "930000000001", Candidate: "Judy", Keyword: "loyal", VoteCount: 3},
		{Mynumber: "930000000002", Candidate: "Judy", Keyword: "fresh", VoteCount: 1},
		{Mynumber: "930000000003", Candidate: "Judy", Keyword: "fresh", VoteCount: 1},
	}
	for _, b := range ballots {
		if _, err := engine.Cast(ctx, b); err != nil {
			t.Fatalf("Cast() error = %v", err)
		}
	}

	keywords, err := engine.VoiceOfSupporters(ctx, []int64{c})
	if err != nil {
		t.Fatalf("VoiceOfSupporters() error = %v", err)
	}
	if want := []string{"loyal", "fresh"}; !reflect.DeepEqual(keywords, want) {
		t.Errorf("Expected %v, got %v", want, keywords)
	}
}

func TestPartyRanking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	seedTallies(t, db)

	parties, err := engine.PartyRanking(context.Background())
	if err != nil {
		t.Fatalf("PartyRanking() error = %v", err)
	}

	// Green and Yellow have candidates but no votes
	want := []models.PartyResult{
		{PoliticalParty: "Blue", VoteCount: 10},
		{PoliticalParty: "Red", VoteCount: 7},
	}
	if !reflect.DeepEqual(parties, want) {
		t.Errorf("Expected %v, got %v", want, parties)
	}
}

func TestVotesForParty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	seedTallies(t, db)

	tests := []struct {
		party string
		want  int
	}{
		{"Blue", 10},
		{"Red", 7},
		{"Green", 0},
		{"No Such Party", 0},
	}

	for _, tt := range tests {
		got, err := engine.VotesForParty(context.Background(), tt.party)
		if err != nil {
			t.Fatalf("VotesForParty(%q) error = %v", tt.party, err)
		}
		if got != tt.want {
			t.Errorf("VotesForParty(%q) = %d, want %d", tt.party, got, tt.want)
		}
	}
}

func TestSexRanking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	seedTallies(t, db)
	ctx := context.Background()

	results, err := engine.SexRanking(ctx)
	if err != nil {
		t.Fatalf("SexRanking() error = %v", err)
	}

	got := map[string]int{}
	for _, r := range results {
		got[r.Sex] = r.VoteCount
	}
	if want := map[string]int{"female": 10, "male": 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	ratio, err := engine.SexRatio(ctx)
	if err != nil {
		t.Fatalf("SexRatio() error = %v", err)
	}
	if ratio != (models.SexRatio{Man: 7, Woman: 10}) {
		t.Errorf("Unexpected ratio %+v", ratio)
	}
}

func TestSexRatio_MissingCategoryIsZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	ctx := context.Background()

	ratio, err := engine.SexRatio(ctx)
	if err != nil {
		t.Fatalf("SexRatio() error = %v", err)
	}
	if ratio != (models.SexRatio{}) {
		t.Errorf("Expected zero ratio with no votes, got %+v", ratio)
	}

	// Japanese seed data stores 男/女
	c := testutil.CreateTestCandidate(t, db, "Kenji", "Blue", "男")
	user := testutil.CreateTestUser(t, db, "940000000001", 5)
	testutil.AddTestVotes(t, db, user, c, "strong", 4)

	ratio, err = engine.SexRatio(ctx)
	if err != nil {
		t.Fatalf("SexRatio() error = %v", err)
	}
	if ratio != (models.SexRatio{Man: 4, Woman: 0}) {
		t.Errorf("Unexpected ratio %+v", ratio)
	}
}

func TestIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)

	page, err := engine.Index(context.Background())
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	// Top 10 (all five here) followed by the lowest one
	want := []int64{f.bob, f.alice, f.carol, f.dave, f.eve, f.eve}
	if got := resultIDs(page.Candidates); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected candidates %v, got %v", want, got)
	}
	if len(page.Parties) != 2 {
		t.Errorf("Expected 2 parties, got %d", len(page.Parties))
	}
	if page.SexRatio != (models.SexRatio{Man: 7, Woman: 10}) {
		t.Errorf("Unexpected ratio %+v", page.SexRatio)
	}
}

func TestCandidatePage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)
	ctx := context.Background()

	page, err := engine.CandidatePage(ctx, f.alice)
	if err != nil {
		t.Fatalf("CandidatePage() error = %v", err)
	}
	if page.Candidate.Name != "Alice" || page.Votes != 5 {
		t.Errorf("Unexpected page %+v", page)
	}
	if want := []string{"trust", "vision"}; !reflect.DeepEqual(page.Keywords, want) {
		t.Errorf("Expected keywords %v, got %v", want, page.Keywords)
	}

	_, err = engine.CandidatePage(ctx, 12345)
	if !election.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestPartyPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)
	ctx := context.Background()

	page, err := engine.PartyPage(ctx, "Blue")
	if err != nil {
		t.Fatalf("PartyPage() error = %v", err)
	}
	if page.PoliticalParty != "Blue" || page.Votes != 10 {
		t.Errorf("Unexpected page %+v", page)
	}
	if len(page.Candidates) != 2 || page.Candidates[0].ID != f.alice || page.Candidates[1].ID != f.carol {
		t.Errorf("Unexpected candidates %+v", page.Candidates)
	}
	if want := []string{"kind", "trust", "vision"}; !reflect.DeepEqual(page.Keywords, want) {
		t.Errorf("Expected keywords %v, got %v", want, page.Keywords)
	}

	empty, err := engine.PartyPage(ctx, "No Such Party")
	if err != nil {
		t.Fatalf("PartyPage() error = %v", err)
	}
	if empty.Votes != 0 || len(empty.Candidates) != 0 || len(empty.Keywords) != 0 {
		t.Errorf("Expected empty page, got %+v", empty)
	}
}

func TestCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	engine := newTestEngine(t, db)
	f := seedTallies(t, db)

	candidates, err := engine.Candidates(context.Background())
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(candidates) != 5 || candidates[0].ID != f.alice {
		t.Errorf("Unexpected candidates %+v", candidates)
	}
}
