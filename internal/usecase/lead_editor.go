package usecase

import (
	"context"

	"github.com/xavierca1/produtora-site/internal/entity"
)

// LeadEditor is the detail overlay of a single lead. Status changes apply
// at once; notes keep a draft/committed pair and only save when they
// differ; deletion needs RequestDelete before ConfirmDelete.
type LeadEditor struct {
	admin *LeadAdminUseCase
	sess  *entity.Session

	lead           *entity.Lead
	committedNotes string
	draftNotes     string
	deleteArmed    bool
	closed         bool
}

// OpenEditor lê o registro direto do store, nunca da listagem em cache:
// o par committed/draft de notas precisa partir do valor atual.
func (uc *LeadAdminUseCase) OpenEditor(ctx context.Context, sess *entity.Session, id string) (*LeadEditor, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, uc.mutationError(err)
	}
	return &LeadEditor{
		admin:          uc,
		sess:           sess,
		lead:           lead,
		committedNotes: lead.Notes,
		draftNotes:     lead.Notes,
	}, nil
}

// Lead is the last confirmed state of the record.
func (e *LeadEditor) Lead() *entity.Lead {
	return e.lead
}

func (e *LeadEditor) Closed() bool {
	return e.closed
}

func (e *LeadEditor) ChangeStatus(ctx context.Context, status entity.LeadStatus) error {
	if e.closed {
		return editorClosed()
	}
	updated, err := e.admin.SetStatus(ctx, e.sess, e.lead.ID, status)
	if err != nil {
		return err
	}
	e.lead = updated
	return nil
}

func (e *LeadEditor) EditNotes(draft string) {
	e.draftNotes = draft
}

func (e *LeadEditor) DraftNotes() string {
	return e.draftNotes
}

// Dirty reports whether the draft differs from the last saved notes.
func (e *LeadEditor) Dirty() bool {
	return e.draftNotes != e.committedNotes
}

func (e *LeadEditor) SaveNotes(ctx context.Context) error {
	if e.closed {
		return editorClosed()
	}
	if !e.Dirty() {
		return &DomainError{Code: CodeNotesUnchanged, Field: "notes", Message: "As notas não foram alteradas"}
	}

	updated, err := e.admin.SetNotes(ctx, e.sess, e.lead.ID, e.draftNotes)
	if err != nil {
		return err
	}
	e.lead = updated
	e.committedNotes = e.draftNotes
	return nil
}

// RequestDelete arms the destructive-action guard.
func (e *LeadEditor) RequestDelete() {
	e.deleteArmed = true
}

func (e *LeadEditor) CancelDelete() {
	e.deleteArmed = false
}

func (e *LeadEditor) ConfirmDelete(ctx context.Context) error {
	if e.closed {
		return editorClosed()
	}
	if !e.deleteArmed {
		return &DomainError{Code: CodeDeleteNotConfirmed, Message: "Confirme a exclusão antes de continuar"}
	}

	if err := e.admin.Delete(ctx, e.sess, e.lead.ID); err != nil {
		e.deleteArmed = false
		return err
	}
	e.closed = true
	return nil
}

func editorClosed() error {
	return &DomainError{Code: CodeEditorClosed, Message: "O lead foi fechado ou excluído"}
}
