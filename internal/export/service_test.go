package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tunde-ajayi/cardscan/constants"
	"github.com/tunde-ajayi/cardscan/internal/entity"
)

func TestContactsXLSX(t *testing.T) {
	records := []*entity.ContactRecord{
		{
			Name:         "Jane A. Smith",
			Title:        "Marketing Director",
			Company:      "Acme Corp",
			Email:        "jane.smith@acme.com",
			Phones:       []string{"15550123456", "5559876543"},
			Website:      "www.acme.com",
			SourceFileID: "src-1",
			Outcome:      constants.OutcomeAccepted,
		},
		nil, // tolerated
		{
			Company:      "Acme Corp",
			SourceFileID: "src-2",
			Outcome:      constants.OutcomeSkipped,
			SkipReason:   constants.SkipReasonNoEmail,
		},
	}

	data, err := NewService(nil).ContactsXLSX(records)
	if err != nil {
		t.Fatalf("ContactsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			t.Errorf("close workbook: %v", cerr)
		}
	}()

	rows, err := f.GetRows("Contacts")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 records", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][3] != "Email" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][3] != "jane.smith@acme.com" {
		t.Errorf("email cell = %q", rows[1][3])
	}
	if rows[1][4] != "15550123456, 5559876543" {
		t.Errorf("phones cell = %q", rows[1][4])
	}
	if rows[2][6] != string(constants.OutcomeSkipped) || rows[2][7] != constants.SkipReasonNoEmail {
		t.Errorf("skipped row = %v", rows[2])
	}
}

func TestContactsXLSXEmpty(t *testing.T) {
	data, err := NewService(nil).ContactsXLSX(nil)
	if err != nil {
		t.Fatalf("ContactsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Contacts")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
