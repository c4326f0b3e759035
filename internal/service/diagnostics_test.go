package service

import (
	"context"
	"errors"
	"testing"

	"github.com/octobees/contact-site/api/internal/dto"
	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/repository"
)

func TestDiagnosticsService_Snapshot(t *testing.T) {
	contacts := &memoryContactsRepo{}
	diagnostics := &stubDiagnosticsRepo{snapshot: entity.DatabaseSnapshot{
		Contacts:       []entity.ContactDetail{{Contact: entity.Contact{ID: 1, Message: "Bonjour"}, MessageLength: 7}},
		Statistics:     entity.DatabaseStatistics{TotalContacts: 1},
		TableStructure: []entity.ColumnDescriptor{{ColumnName: "id", DataType: "bigint", IsNullable: "NO"}},
	}}
	svc := NewDiagnosticsService(contacts, diagnostics)

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diagnostics.calls != 1 {
		t.Fatalf("expected one snapshot read, got %d", diagnostics.calls)
	}
	if len(snapshot.Contacts) != 1 || snapshot.Contacts[0].MessageLength != 7 {
		t.Fatalf("unexpected contacts: %+v", snapshot.Contacts)
	}
	if snapshot.Statistics.TotalContacts != 1 || len(snapshot.TableStructure) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestDiagnosticsService_SnapshotFailure(t *testing.T) {
	svc := NewDiagnosticsService(&memoryContactsRepo{}, &stubDiagnosticsRepo{err: errStoreDown})

	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestDiagnosticsService_ApplySeedIsNotIdempotent(t *testing.T) {
	contacts := &memoryContactsRepo{}
	svc := NewDiagnosticsService(contacts, &stubDiagnosticsRepo{})
	batch := len(repository.SeedContacts())

	for i := 0; i < 2; i++ {
		inserted, err := svc.Apply(context.Background(), dto.ActionAddTestData)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inserted) != batch {
			t.Fatalf("expected %d inserted contacts, got %d", batch, len(inserted))
		}
	}
	if contacts.count() != 2*batch {
		t.Fatalf("expected %d contacts after seeding twice, got %d", 2*batch, contacts.count())
	}
}

func TestDiagnosticsService_ApplyUnknownAction(t *testing.T) {
	contacts := &memoryContactsRepo{}
	svc := NewDiagnosticsService(contacts, &stubDiagnosticsRepo{})

	for _, action := range []string{"", "drop_table", "ADD_TEST_DATA"} {
		if _, err := svc.Apply(context.Background(), action); !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("expected ErrUnknownAction for %q, got %v", action, err)
		}
	}
	if contacts.count() != 0 {
		t.Fatalf("expected no writes for unknown actions")
	}
}
