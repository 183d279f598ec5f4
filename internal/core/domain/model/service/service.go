package service

import (
	"errors"
	"strings"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

// Domain errors for service operations.
var (
	// ErrNameIsRequired is returned when a service has a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("serviceName")
	// ErrDescriptionIsRequired is returned when a service has a blank description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrCoverImageIsRequired is returned when a service has no cover image.
	ErrCoverImageIsRequired = errs.NewValueIsRequiredError("coverImage")
	// ErrInterviewDatesAreRequired is returned when a service offers no interview slot.
	ErrInterviewDatesAreRequired = errs.NewValueIsRequiredError("interviewDates")
	// ErrServiceIsNotConstructed is returned when using an improperly initialized Service.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")
)

// Service is a recruitment posting and the aggregate root owning its remote
// assets: one cover image, a media gallery and downloadable documents.
//
// Key responsibilities:
//   - holding the posting text, interview slots and the people involved
//   - tracking which remote assets belong to the posting
//   - handing back the assets that a change detached, so callers can
//     reconcile them with the blob store after the change is persisted
//
// Business rules:
//   - name and description are non-blank
//   - a cover image is always present
//   - at least one interview date is offered
//   - media are stored as image or video, documents as raw
type Service struct {
	id             kernel.UUID
	name           string
	description    string
	coverImage     *asset.Asset
	media          []*asset.Asset
	documents      []*asset.Asset
	interviewDates []kernel.InterviewDate
	usersInvolved  []Participant
	createdAt      time.Time
	updatedAt      time.Time
	guard          guard.ConstructorGuard
}

// NewService creates a service from freshly uploaded assets.
func NewService(
	id kernel.UUID,
	name, description string,
	coverImage *asset.Asset,
	media, documents []*asset.Asset,
	interviewDates []kernel.InterviewDate,
	usersInvolved []Participant,
	now time.Time,
) (*Service, error) {
	return RestoreService(id, name, description, coverImage, media, documents, interviewDates, usersInvolved, now, now)
}

// RestoreService reconstructs a Service from persistent storage.
func RestoreService(
	id kernel.UUID,
	name, description string,
	coverImage *asset.Asset,
	media, documents []*asset.Asset,
	interviewDates []kernel.InterviewDate,
	usersInvolved []Participant,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	s := &Service{
		guard:     guard.NewConstructorGuard(),
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setDescription(description),
		s.setCoverImage(coverImage),
		s.setInterviewDates(interviewDates),
		s.setUsersInvolved(usersInvolved),
		s.AddMedia(media...),
		s.AddDocuments(documents...),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) IsEqual(other *Service) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Description() string {
	return s.description
}

func (s *Service) CoverImage() *asset.Asset {
	return s.coverImage
}

func (s *Service) Media() []*asset.Asset {
	out := make([]*asset.Asset, len(s.media))
	copy(out, s.media)
	return out
}

func (s *Service) Documents() []*asset.Asset {
	out := make([]*asset.Asset, len(s.documents))
	copy(out, s.documents)
	return out
}

func (s *Service) InterviewDates() []kernel.InterviewDate {
	out := make([]kernel.InterviewDate, len(s.interviewDates))
	copy(out, s.interviewDates)
	return out
}

func (s *Service) UsersInvolved() []Participant {
	out := make([]Participant, len(s.usersInvolved))
	copy(out, s.usersInvolved)
	return out
}

func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Service) UpdatedAt() time.Time {
	return s.updatedAt
}

// Document returns the document entry with the given id.
func (s *Service) Document(id kernel.UUID) (*asset.Asset, error) {
	for _, doc := range s.documents {
		if doc.ID().IsEqual(id) {
			return doc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("documentId", id)
}

func (s *Service) Rename(name string, now time.Time) error {
	if err := s.setName(name); err != nil {
		return err
	}
	s.touch(now)
	return nil
}

func (s *Service) Describe(description string, now time.Time) error {
	if err := s.setDescription(description); err != nil {
		return err
	}
	s.touch(now)
	return nil
}

func (s *Service) ReplaceInterviewDates(dates []kernel.InterviewDate, now time.Time) error {
	if err := s.setInterviewDates(dates); err != nil {
		return err
	}
	s.touch(now)
	return nil
}

func (s *Service) ReplaceUsersInvolved(users []Participant, now time.Time) error {
	if err := s.setUsersInvolved(users); err != nil {
		return err
	}
	s.touch(now)
	return nil
}

// ReplaceCoverImage swaps the cover image and returns the detached one.
func (s *Service) ReplaceCoverImage(coverImage *asset.Asset, now time.Time) (*asset.Asset, error) {
	previous := s.coverImage
	if err := s.setCoverImage(coverImage); err != nil {
		return nil, err
	}
	s.touch(now)
	if previous.SameObject(coverImage) {
		return nil, nil
	}
	return previous, nil
}

// AddMedia appends gallery entries. Each must be stored as image or video,
// or carry a legacy unknown kind.
func (s *Service) AddMedia(media ...*asset.Asset) error {
	var joined []error
	for _, m := range media {
		if err := m.Validate(); err != nil {
			joined = append(joined, err)
			continue
		}
		if m.ResourceKind() == asset.Raw {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
				"media", errors.New("media must be stored as image or video")))
			continue
		}
		s.media = append(s.media, m)
	}
	return errors.Join(joined...)
}

// AddDocuments appends downloadable documents.
func (s *Service) AddDocuments(documents ...*asset.Asset) error {
	var joined []error
	for _, d := range documents {
		if err := d.Validate(); err != nil {
			joined = append(joined, err)
			continue
		}
		s.documents = append(s.documents, d)
	}
	return errors.Join(joined...)
}

// RemoveMedia detaches the gallery entries with the given ids and returns them.
// Unknown ids are reported as not found and nothing is removed.
func (s *Service) RemoveMedia(ids []kernel.UUID, now time.Time) ([]*asset.Asset, error) {
	kept, removed, err := detach(s.media, ids, "mediaId")
	if err != nil {
		return nil, err
	}
	s.media = kept
	if len(removed) > 0 {
		s.touch(now)
	}
	return removed, nil
}

// RemoveDocuments detaches the documents with the given ids and returns them.
func (s *Service) RemoveDocuments(ids []kernel.UUID, now time.Time) ([]*asset.Asset, error) {
	kept, removed, err := detach(s.documents, ids, "documentId")
	if err != nil {
		return nil, err
	}
	s.documents = kept
	if len(removed) > 0 {
		s.touch(now)
	}
	return removed, nil
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Service) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionIsRequired
	}
	s.description = description
	return nil
}

func (s *Service) setCoverImage(coverImage *asset.Asset) error {
	if coverImage == nil {
		return ErrCoverImageIsRequired
	}
	if err := coverImage.Validate(); err != nil {
		return err
	}
	s.coverImage = coverImage
	return nil
}

func (s *Service) setInterviewDates(dates []kernel.InterviewDate) error {
	if len(dates) == 0 {
		return ErrInterviewDatesAreRequired
	}
	for _, d := range dates {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	s.interviewDates = append([]kernel.InterviewDate(nil), dates...)
	return nil
}

func (s *Service) setUsersInvolved(users []Participant) error {
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return err
		}
	}
	s.usersInvolved = append([]Participant(nil), users...)
	return nil
}

func (s *Service) touch(now time.Time) {
	s.updatedAt = now.UTC()
}

func detach(assets []*asset.Asset, ids []kernel.UUID, param string) (kept, removed []*asset.Asset, err error) {
	for _, id := range ids {
		found := false
		for _, a := range assets {
			if a.ID().IsEqual(id) {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, errs.NewObjectNotFoundError(param, id)
		}
	}

	kept = make([]*asset.Asset, 0, len(assets))
	for _, a := range assets {
		if containsID(ids, a.ID()) {
			removed = append(removed, a)
			continue
		}
		kept = append(kept, a)
	}
	return kept, removed, nil
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
