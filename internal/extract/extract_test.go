package extract

import (
	"reflect"
	"testing"

	"github.com/tunde-ajayi/cardscan/constants"
)

func TestContactFullCard(t *testing.T) {
	lines := []string{
		"Jane A. Smith",
		"Marketing Director",
		"Acme Corp",
		"jane.smith@acme.com",
		"+1 (555) 012-3456",
		"www.acme.com",
	}
	rec := Contact("src-1", lines)

	if rec.Outcome != constants.OutcomeAccepted {
		t.Fatalf("outcome = %s (%s), want accepted", rec.Outcome, rec.SkipReason)
	}
	if rec.Name != "Jane A. Smith" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Title != "Marketing Director" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Company != "Acme Corp" {
		t.Errorf("company = %q", rec.Company)
	}
	if rec.Email != "jane.smith@acme.com" {
		t.Errorf("email = %q", rec.Email)
	}
	if want := []string{"15550123456"}; !reflect.DeepEqual(rec.Phones, want) {
		t.Errorf("phones = %v, want %v", rec.Phones, want)
	}
	if rec.Website != "www.acme.com" {
		t.Errorf("website = %q", rec.Website)
	}
	if rec.SourceFileID != "src-1" {
		t.Errorf("source file id = %q", rec.SourceFileID)
	}
}

func TestContactNoEmailSkipped(t *testing.T) {
	lines := []string{
		"Acme Corp",
		"123 Main St",
		"(555) 012-3456",
	}
	rec := Contact("src-2", lines)

	if rec.Outcome != constants.OutcomeSkipped {
		t.Fatalf("outcome = %s, want skipped", rec.Outcome)
	}
	if rec.SkipReason != constants.SkipReasonNoEmail {
		t.Errorf("skip reason = %q, want %q", rec.SkipReason, constants.SkipReasonNoEmail)
	}
	if rec.Company != "Acme Corp" {
		t.Errorf("company = %q, want it extracted despite the skip", rec.Company)
	}
}

func TestContactEmptyInput(t *testing.T) {
	for _, lines := range [][]string{nil, {}, {"   ", "----"}} {
		rec := Contact("src-3", lines)
		if rec.Outcome != constants.OutcomeSkipped || rec.SkipReason != constants.SkipReasonNoEmail {
			t.Errorf("Contact(%q) = %s/%q, want skipped with no email", lines, rec.Outcome, rec.SkipReason)
		}
	}
}

func TestContactSingleEmailVerbatim(t *testing.T) {
	rec := Contact("src-4", []string{"Jane Smith", "Jane.Smith+biz@Acme.COM"})
	if rec.Email != "Jane.Smith+biz@Acme.COM" {
		t.Errorf("email = %q, want the matched text case-preserved", rec.Email)
	}
	if rec.Outcome != constants.OutcomeAccepted {
		t.Errorf("outcome = %s, want accepted", rec.Outcome)
	}
}

// One normalized line feeds at most one resolved field; the provenance map
// must therefore never map two fields to the same line index.
func TestContactMutualExclusion(t *testing.T) {
	lines := []string{
		"Jane A. Smith",
		"Marketing Director",
		"Acme Corp",
		"jane.smith@acme.com",
		"+1 (555) 012-3456",
		"www.acme.com",
	}
	rec := Contact("src-5", lines)

	seen := make(map[int]string)
	for field, line := range rec.Provenance {
		if prev, dup := seen[line]; dup {
			t.Errorf("line %d resolved as both %s and %s", line, prev, field)
		}
		seen[line] = field
	}
}
