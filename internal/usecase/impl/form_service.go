package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"sync"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/errors"
	"ummana/internal/infra/metrics"
	"ummana/internal/picker"
	"ummana/internal/usecase"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
)

// Form field names, matching the JSON names of the record inputs.
const (
	FieldName         = "name"
	FieldSettlement   = "settlement"
	FieldWard         = "ward"
	FieldLGA          = "lga"
	FieldLat          = "lat"
	FieldLng          = "lng"
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldPhoneNumber  = "phoneNumber"
	FieldVehicleType  = "vehicleType"
	FieldFacilityType = "facilityType"
)

var formFields = map[entity.Kind][]string{
	entity.KindCommunity: {FieldName, FieldSettlement, FieldWard, FieldLGA, FieldLat, FieldLng},
	entity.KindAgent:     {FieldFirstName, FieldLastName, FieldPhoneNumber},
	entity.KindDriver:    {FieldFirstName, FieldLastName, FieldPhoneNumber, FieldVehicleType},
	entity.KindFacility:  {FieldName, FieldWard, FieldLGA, FieldLat, FieldLng, FieldFacilityType},
}

// formDraft is the server side state of one open form.
type formDraft struct {
	mu sync.Mutex

	id           string
	kind         entity.Kind
	mode         usecase.FormMode
	editID       string
	fields       map[string]string
	picker       *picker.Picker
	capabilities entity.CapabilitySet
	lastError    string
}

func (d *formDraft) snapshot() *usecase.FormDraft {
	out := &usecase.FormDraft{
		ID:        d.id,
		Kind:      d.kind,
		Mode:      d.mode,
		EditID:    d.editID,
		Fields:    maps.Clone(d.fields),
		LastError: d.lastError,
	}
	if d.picker != nil {
		out.Slots = d.picker.Slots()
		out.MaxSlots = d.picker.MaxSlots()
		out.CanAddSlot = d.picker.CanAddSlot()
	}
	if d.capabilities != nil {
		out.Capabilities = maps.Clone(d.capabilities)
	}

	return out
}

type FormParams struct {
	fx.In

	Config      *config.Config
	Views       *Views
	Communities usecase.CommunityUsecase
	Agents      usecase.AgentUsecase
	Drivers     usecase.DriverUsecase
	Facilities  usecase.FacilityUsecase
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

type formService struct {
	views       *Views
	communities usecase.CommunityUsecase
	agents      usecase.AgentUsecase
	drivers     usecase.DriverUsecase
	facilities  usecase.FacilityUsecase
	metrics     *metrics.Metrics
	logger      *slog.Logger

	maxSlots int
	drafts   *expirable.LRU[string, *formDraft]
}

// NewFormService creates a new form service instance. Drafts idle for longer
// than the configured TTL are dropped.
func NewFormService(params FormParams) usecase.FormUsecase {
	forms := params.Config.Forms
	if forms == nil {
		forms = &config.FormsConfig{}
	}

	return &formService{
		views:       params.Views,
		communities: params.Communities,
		agents:      params.Agents,
		drivers:     params.Drivers,
		facilities:  params.Facilities,
		metrics:     params.Metrics,
		logger:      params.Logger,
		maxSlots:    forms.MaxLinkedCommunities,
		drafts:      expirable.NewLRU[string, *formDraft](forms.MaxDrafts, nil, forms.DraftTTL),
	}
}

func (srv *formService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *formService) Open(ctx context.Context, kind entity.Kind, editID string) (*usecase.FormDraft, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrUnknownKind.WithDetails(string(kind))
	}

	draft := &formDraft{
		id:     uuid.New().String(),
		kind:   kind,
		mode:   usecase.FormModeCreate,
		fields: make(map[string]string, len(formFields[kind])),
	}
	for _, name := range formFields[kind] {
		draft.fields[name] = ""
	}
	if kind.HasLinkedCommunities() {
		draft.picker = picker.New(srv.maxSlots)
	}

	if editID == "" {
		srv.applyDefaults(draft)
	} else {
		draft.mode = usecase.FormModeEdit
		draft.editID = editID
		if err := srv.seed(ctx, draft); err != nil {
			return nil, err
		}
	}

	// Pickers search the loaded community list.
	if kind.HasLinkedCommunities() {
		if _, err := srv.communities.All(ctx); err != nil {
			return nil, err
		}
	}

	srv.drafts.Add(draft.id, draft)
	srv.metrics.SetOpenDrafts(srv.drafts.Len())
	srv.log(ctx).Debug("Form opened",
		slog.String("draft_id", draft.id),
		slog.String("kind", string(kind)),
		slog.String("mode", string(draft.mode)),
	)

	return draft.snapshot(), nil
}

func (srv *formService) applyDefaults(draft *formDraft) {
	switch draft.kind {
	case entity.KindDriver:
		draft.fields[FieldVehicleType] = string(entity.VehicleCar)
	case entity.KindFacility:
		draft.fields[FieldFacilityType] = entity.FacilityTypes()[0]
		draft.capabilities = entity.NewCapabilitySet()
	}
}

// seed copies the record being edited into the draft.
func (srv *formService) seed(ctx context.Context, draft *formDraft) error {
	switch draft.kind {
	case entity.KindCommunity:
		c, err := srv.communities.Get(ctx, draft.editID)
		if err != nil {
			return err
		}
		draft.fields[FieldName] = c.Name
		draft.fields[FieldSettlement] = c.Settlement
		draft.fields[FieldWard] = c.Ward
		draft.fields[FieldLGA] = c.LGA
		if c.Location != nil {
			draft.fields[FieldLat] = formatCoordinate(c.Location.Lat)
			draft.fields[FieldLng] = formatCoordinate(c.Location.Lng)
		}
	case entity.KindAgent:
		row, err := srv.agents.Get(ctx, draft.editID)
		if err != nil {
			return err
		}
		draft.fields[FieldFirstName] = row.FirstName
		draft.fields[FieldLastName] = row.LastName
		draft.fields[FieldPhoneNumber] = row.PhoneNumber
		draft.picker.Seed(row.CatchmentAreaIDs, entity.IndexCommunities(srv.views.Communities.Items()))
	case entity.KindDriver:
		row, err := srv.drivers.Get(ctx, draft.editID)
		if err != nil {
			return err
		}
		draft.fields[FieldFirstName] = row.FirstName
		draft.fields[FieldLastName] = row.LastName
		draft.fields[FieldPhoneNumber] = row.PhoneNumber
		draft.fields[FieldVehicleType] = string(row.VehicleType)
		draft.picker.Seed(row.CatchmentAreaIDs, entity.IndexCommunities(srv.views.Communities.Items()))
	case entity.KindFacility:
		row, err := srv.facilities.Get(ctx, draft.editID)
		if err != nil {
			return err
		}
		draft.fields[FieldName] = row.Name
		draft.fields[FieldWard] = row.Ward
		draft.fields[FieldLGA] = row.LGA
		draft.fields[FieldLat] = formatCoordinate(row.Lat)
		draft.fields[FieldLng] = formatCoordinate(row.Lng)
		draft.fields[FieldFacilityType] = row.FacilityType
		draft.capabilities = row.Capabilities.Normalize()
	}

	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// draft looks an open draft up and refreshes its expiry.
func (srv *formService) draft(draftID string) (*formDraft, error) {
	draft, ok := srv.drafts.Get(draftID)
	if !ok {
		return nil, domainerrors.ErrDraftNotFound.WithDetails(draftID)
	}
	srv.drafts.Add(draftID, draft)

	return draft, nil
}

// update runs fn on a locked draft and returns the resulting state.
func (srv *formService) update(draftID string, fn func(d *formDraft) error) (*usecase.FormDraft, error) {
	draft, err := srv.draft(draftID)
	if err != nil {
		return nil, err
	}

	draft.mu.Lock()
	defer draft.mu.Unlock()

	if err := fn(draft); err != nil {
		return nil, err
	}

	return draft.snapshot(), nil
}

func (srv *formService) Get(_ context.Context, draftID string) (*usecase.FormDraft, error) {
	return srv.update(draftID, func(*formDraft) error { return nil })
}

func (srv *formService) Close(ctx context.Context, draftID string) error {
	if !srv.drafts.Remove(draftID) {
		return domainerrors.ErrDraftNotFound.WithDetails(draftID)
	}
	srv.metrics.SetOpenDrafts(srv.drafts.Len())
	srv.log(ctx).Debug("Form closed", slog.String("draft_id", draftID))

	return nil
}

// SetFields rejects the whole update when any name does not belong to the form.
func (srv *formService) SetFields(_ context.Context, draftID string, fields map[string]string) (*usecase.FormDraft, error) {
	return srv.update(draftID, func(d *formDraft) error {
		for name := range fields {
			if _, ok := d.fields[name]; !ok {
				return domainerrors.ErrUnknownField.WithDetails(
					fmt.Sprintf("%q is not a %s field", name, d.kind))
			}
		}
		maps.Copy(d.fields, fields)

		return nil
	})
}

func (srv *formService) withPicker(draftID string, fn func(d *formDraft) error) (*usecase.FormDraft, error) {
	return srv.update(draftID, func(d *formDraft) error {
		if d.picker == nil {
			return domainerrors.ErrPickerUnavailable.WithDetails(string(d.kind))
		}

		return fn(d)
	})
}

func (srv *formService) AddSlot(_ context.Context, draftID string) (*usecase.FormDraft, error) {
	return srv.withPicker(draftID, func(d *formDraft) error {
		return d.picker.AddSlot()
	})
}

func (srv *formService) RemoveSlot(_ context.Context, draftID string, index int) (*usecase.FormDraft, error) {
	return srv.withPicker(draftID, func(d *formDraft) error {
		return d.picker.RemoveSlot(index)
	})
}

func (srv *formService) SearchSlot(ctx context.Context, draftID string, index int, text string) (*usecase.FormDraft, error) {
	communities, err := srv.communities.All(ctx)
	if err != nil {
		return nil, err
	}

	return srv.withPicker(draftID, func(d *formDraft) error {
		return d.picker.SearchTermChange(index, text, communities)
	})
}

// SelectSlot resolves a slot to a community from the loaded list.
func (srv *formService) SelectSlot(_ context.Context, draftID string, index int, communityID string) (*usecase.FormDraft, error) {
	return srv.withPicker(draftID, func(d *formDraft) error {
		community, ok := srv.views.Communities.Get(communityID)
		if !ok {
			return domainerrors.ErrUnknownCommunity.WithDetails(communityID)
		}

		return d.picker.Select(index, community)
	})
}

func (srv *formService) PointerDown(_ context.Context, draftID string, region string) (*usecase.FormDraft, error) {
	return srv.withPicker(draftID, func(d *formDraft) error {
		d.picker.PointerDown(region)

		return nil
	})
}

func (srv *formService) ToggleCapability(_ context.Context, draftID string, key entity.CapabilityKey) (*usecase.FormDraft, error) {
	return srv.update(draftID, func(d *formDraft) error {
		if d.kind != entity.KindFacility {
			return domainerrors.ErrUnknownCapability.WithDetails(
				fmt.Sprintf("%s forms have no capabilities", d.kind))
		}
		if !entity.IsCapabilityKey(key) {
			return domainerrors.ErrUnknownCapability.WithDetails(string(key))
		}
		d.capabilities[key] = !d.capabilities[key]

		return nil
	})
}

// Submit saves the draft through the use case of its kind. A successful
// submit closes the draft; a failed one keeps it open with the error message.
func (srv *formService) Submit(ctx context.Context, draftID string) (*usecase.FormResult, error) {
	draft, err := srv.draft(draftID)
	if err != nil {
		return nil, err
	}

	draft.mu.Lock()
	defer draft.mu.Unlock()

	id, record, err := srv.save(ctx, draft)
	srv.metrics.ObserveSubmission(string(draft.kind), err == nil)
	if err != nil {
		draft.lastError = userMessage(err)
		srv.log(ctx).Warn("Form submit failed",
			slog.String("draft_id", draftID),
			slog.String("kind", string(draft.kind)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.drafts.Remove(draftID)
	srv.metrics.SetOpenDrafts(srv.drafts.Len())

	return &usecase.FormResult{
		Kind:   draft.kind,
		Mode:   draft.mode,
		ID:     id,
		Record: record,
	}, nil
}

func (srv *formService) save(ctx context.Context, d *formDraft) (string, any, error) {
	f := d.fields
	edit := d.mode == usecase.FormModeEdit

	switch d.kind {
	case entity.KindCommunity:
		input := &usecase.CommunityInput{
			Name:       f[FieldName],
			Settlement: f[FieldSettlement],
			Ward:       f[FieldWard],
			LGA:        f[FieldLGA],
			Lat:        f[FieldLat],
			Lng:        f[FieldLng],
		}
		var (
			c   *entity.Community
			err error
		)
		if edit {
			c, err = srv.communities.Update(ctx, d.editID, input)
		} else {
			c, err = srv.communities.Create(ctx, input)
		}
		if err != nil {
			return "", nil, err
		}

		return c.ID, c, nil
	case entity.KindAgent:
		input := &usecase.AgentInput{
			FirstName:        f[FieldFirstName],
			LastName:         f[FieldLastName],
			PhoneNumber:      f[FieldPhoneNumber],
			CatchmentAreaIDs: d.picker.SelectedIDs(),
		}
		var (
			row *usecase.AgentRow
			err error
		)
		if edit {
			row, err = srv.agents.Update(ctx, d.editID, input)
		} else {
			row, err = srv.agents.Create(ctx, input)
		}
		if err != nil {
			return "", nil, err
		}

		return row.ID, row, nil
	case entity.KindDriver:
		input := &usecase.DriverInput{
			FirstName:        f[FieldFirstName],
			LastName:         f[FieldLastName],
			PhoneNumber:      f[FieldPhoneNumber],
			VehicleType:      f[FieldVehicleType],
			CatchmentAreaIDs: d.picker.SelectedIDs(),
		}
		var (
			row *usecase.DriverRow
			err error
		)
		if edit {
			row, err = srv.drivers.Update(ctx, d.editID, input)
		} else {
			row, err = srv.drivers.Create(ctx, input)
		}
		if err != nil {
			return "", nil, err
		}

		return row.ID, row, nil
	case entity.KindFacility:
		input := &usecase.FacilityInput{
			Name:         f[FieldName],
			Ward:         f[FieldWard],
			LGA:          f[FieldLGA],
			Lat:          f[FieldLat],
			Lng:          f[FieldLng],
			FacilityType: f[FieldFacilityType],
			Capabilities: maps.Clone(d.capabilities),
		}
		var (
			row *usecase.FacilityRow
			err error
		)
		if edit {
			row, err = srv.facilities.Update(ctx, d.editID, input)
		} else {
			row, err = srv.facilities.Create(ctx, input)
		}
		if err != nil {
			return "", nil, err
		}

		return row.ID, row, nil
	default:
		return "", nil, domainerrors.ErrUnknownKind.WithDetails(string(d.kind))
	}
}

// userMessage is the text shown in the open form for err.
func userMessage(err error) string {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return err.Error()
}
