// Package form implements the lead intake conversation as a pure state
// machine. Apply takes the current step, the draft and an event and
// returns the next step, the updated draft and what to show the user.
// Side effects (sending messages, persisting leads) stay in the bot layer.
package form

import (
	"strings"

	"github.com/gradnja/leadbot/internal/storage"
	"github.com/gradnja/leadbot/internal/validate"
)

// Step identifies a position in the intake conversation.
type Step string

// Conversation steps.
const (
	StepIdle        Step = "idle"
	StepConfirmData Step = "confirm_data"
	StepName        Step = "waiting_for_name"
	StepPhone       Step = "waiting_for_phone"
	StepEmail       Step = "waiting_for_email"
	StepDescription Step = "waiting_for_description"
	StepFiles       Step = "waiting_for_files"
	StepPreview     Step = "preview"
	StepEditing     Step = "editing"
)

// Field names a draft field selectable for editing.
type Field string

// Editable fields.
const (
	FieldName        Field = "name"
	FieldPhone       Field = "phone"
	FieldEmail       Field = "email"
	FieldDescription Field = "description"
)

// Prompt tells the bot layer what to show after a transition.
type Prompt string

// Prompts produced by Apply.
const (
	PromptNone                Prompt = ""
	PromptConfirmData         Prompt = "confirm_old_data"
	PromptStartNewLead        Prompt = "start_new_lead"
	PromptAskName             Prompt = "ask_name"
	PromptAskPhone            Prompt = "ask_phone"
	PromptAskEmail            Prompt = "ask_email"
	PromptAskDescription      Prompt = "ask_description"
	PromptAskFiles            Prompt = "ask_files"
	PromptInvalidPhone        Prompt = "invalid_phone"
	PromptInvalidEmail        Prompt = "invalid_email"
	PromptDescriptionTooShort Prompt = "description_too_short"
	PromptFileReceived        Prompt = "file_received"
	PromptFileLimitReached    Prompt = "file_limit_reached"
	PromptPreview             Prompt = "preview_lead"
	PromptChooseField         Prompt = "choose_field_to_edit"
	PromptCancelled           Prompt = "cancelled"
)

// Prior holds contact data from the user's last lead, offered for reuse.
type Prior struct {
	FullName string
	Phone    string
	Email    string
}

// Draft accumulates the form answers. Editing marks the field being
// changed from the preview; while set, a successful input returns the
// user straight to the preview.
type Draft struct {
	FullName    string
	Phone       string
	Email       string
	Description string
	Files       []storage.Attachment

	Prior   *Prior
	Editing Field
}

// Outcome is the result of one transition.
type Outcome struct {
	Next   Step
	Draft  Draft
	Prompt Prompt

	// Submit is set when the draft is confirmed and should be persisted.
	Submit bool
}

// Event is one user action fed into Apply.
type Event interface{ isEvent() }

// Start begins a new form. Prior is non-nil when the user has a
// previous lead to reuse.
type Start struct{ Prior *Prior }

// UsePrior accepts the offered contact data.
type UsePrior struct{}

// ChangeData rejects the offered contact data and restarts from the name.
type ChangeData struct{}

// Text is a free-text answer for the current step.
type Text struct{ Value string }

// SkipEmail leaves the email empty.
type SkipEmail struct{}

// Attach adds one file during the files step.
type Attach struct{ File storage.Attachment }

// FilesDone finishes the files step (both "done" and "skip" buttons).
type FilesDone struct{}

// Edit opens the field chooser from the preview.
type Edit struct{}

// EditField picks the field to change.
type EditField struct{ Field Field }

// Send confirms the preview.
type Send struct{}

// Cancel aborts the form from any step.
type Cancel struct{}

func (Start) isEvent()      {}
func (UsePrior) isEvent()   {}
func (ChangeData) isEvent() {}
func (Text) isEvent()       {}
func (SkipEmail) isEvent()  {}
func (Attach) isEvent()     {}
func (FilesDone) isEvent()  {}
func (Edit) isEvent()       {}
func (EditField) isEvent()  {}
func (Send) isEvent()       {}
func (Cancel) isEvent()     {}

// Machine evaluates transitions. MaxFiles caps attachments per lead;
// zero means no cap.
type Machine struct {
	MaxFiles int
}

// Apply computes the transition for one event. Unknown events for the
// current step leave everything unchanged.
func (m Machine) Apply(step Step, draft Draft, event Event) Outcome {
	if _, ok := event.(Cancel); ok {
		return Outcome{Next: StepIdle, Draft: Draft{}, Prompt: PromptCancelled}
	}

	switch step {
	case StepIdle:
		if ev, ok := event.(Start); ok {
			return m.start(ev)
		}
	case StepConfirmData:
		switch event.(type) {
		case UsePrior:
			if draft.Prior != nil {
				draft.FullName = draft.Prior.FullName
				draft.Phone = draft.Prior.Phone
				draft.Email = draft.Prior.Email
			}
			return Outcome{Next: StepDescription, Draft: draft, Prompt: PromptAskDescription}
		case ChangeData:
			draft.Prior = nil
			return Outcome{Next: StepName, Draft: draft, Prompt: PromptStartNewLead}
		}
	case StepName:
		if ev, ok := event.(Text); ok {
			return m.applyName(draft, ev.Value)
		}
	case StepPhone:
		if ev, ok := event.(Text); ok {
			return m.applyPhone(draft, ev.Value)
		}
	case StepEmail:
		switch ev := event.(type) {
		case Text:
			return m.applyEmail(draft, ev.Value)
		case SkipEmail:
			draft.Email = ""
			return m.afterField(draft, StepDescription, PromptAskDescription)
		}
	case StepDescription:
		if ev, ok := event.(Text); ok {
			return m.applyDescription(draft, ev.Value)
		}
	case StepFiles:
		switch ev := event.(type) {
		case Attach:
			return m.applyAttach(draft, ev.File)
		case FilesDone:
			return Outcome{Next: StepPreview, Draft: draft, Prompt: PromptPreview}
		}
	case StepPreview:
		switch event.(type) {
		case Send:
			return Outcome{Next: StepIdle, Draft: draft, Submit: true}
		case Edit:
			return Outcome{Next: StepEditing, Draft: draft, Prompt: PromptChooseField}
		}
	case StepEditing:
		if ev, ok := event.(EditField); ok {
			return m.applyEditField(draft, ev.Field)
		}
	}

	return Outcome{Next: step, Draft: draft}
}

func (m Machine) start(ev Start) Outcome {
	if ev.Prior != nil {
		return Outcome{
			Next:   StepConfirmData,
			Draft:  Draft{Prior: ev.Prior},
			Prompt: PromptConfirmData,
		}
	}
	return Outcome{Next: StepName, Draft: Draft{}, Prompt: PromptStartNewLead}
}

func (m Machine) applyName(draft Draft, value string) Outcome {
	name := strings.TrimSpace(value)
	if !validate.Name(name) {
		return Outcome{Next: StepName, Draft: draft, Prompt: PromptAskName}
	}
	draft.FullName = name
	return m.afterField(draft, StepPhone, PromptAskPhone)
}

func (m Machine) applyPhone(draft Draft, value string) Outcome {
	phone := strings.TrimSpace(value)
	if !validate.Phone(phone) {
		return Outcome{Next: StepPhone, Draft: draft, Prompt: PromptInvalidPhone}
	}
	draft.Phone = phone
	return m.afterField(draft, StepEmail, PromptAskEmail)
}

func (m Machine) applyEmail(draft Draft, value string) Outcome {
	email := strings.TrimSpace(value)
	if !validate.Email(email) {
		return Outcome{Next: StepEmail, Draft: draft, Prompt: PromptInvalidEmail}
	}
	draft.Email = email
	return m.afterField(draft, StepDescription, PromptAskDescription)
}

func (m Machine) applyDescription(draft Draft, value string) Outcome {
	description := strings.TrimSpace(value)
	if !validate.Description(description) {
		return Outcome{Next: StepDescription, Draft: draft, Prompt: PromptDescriptionTooShort}
	}
	editing := draft.Editing != ""
	draft.Description = description
	if editing {
		// Keep already uploaded files when only the text changes.
		draft.Editing = ""
		return Outcome{Next: StepPreview, Draft: draft, Prompt: PromptPreview}
	}
	draft.Files = nil
	return Outcome{Next: StepFiles, Draft: draft, Prompt: PromptAskFiles}
}

func (m Machine) applyAttach(draft Draft, file storage.Attachment) Outcome {
	if m.MaxFiles > 0 && len(draft.Files) >= m.MaxFiles {
		return Outcome{Next: StepFiles, Draft: draft, Prompt: PromptFileLimitReached}
	}
	draft.Files = append(draft.Files, file)
	return Outcome{Next: StepFiles, Draft: draft, Prompt: PromptFileReceived}
}

func (m Machine) applyEditField(draft Draft, field Field) Outcome {
	draft.Editing = field
	switch field {
	case FieldName:
		return Outcome{Next: StepName, Draft: draft, Prompt: PromptAskName}
	case FieldPhone:
		return Outcome{Next: StepPhone, Draft: draft, Prompt: PromptAskPhone}
	case FieldEmail:
		return Outcome{Next: StepEmail, Draft: draft, Prompt: PromptAskEmail}
	case FieldDescription:
		return Outcome{Next: StepDescription, Draft: draft, Prompt: PromptAskDescription}
	}
	draft.Editing = ""
	return Outcome{Next: StepEditing, Draft: draft}
}

// afterField moves forward in the sequence, or back to the preview when
// a single field was being edited.
func (m Machine) afterField(draft Draft, next Step, prompt Prompt) Outcome {
	if draft.Editing != "" {
		draft.Editing = ""
		return Outcome{Next: StepPreview, Draft: draft, Prompt: PromptPreview}
	}
	return Outcome{Next: next, Draft: draft, Prompt: prompt}
}

// InProgressSteps lists the steps that count as an active form.
func InProgressSteps() []Step {
	return []Step{
		StepConfirmData, StepName, StepPhone, StepEmail,
		StepDescription, StepFiles, StepPreview, StepEditing,
	}
}
