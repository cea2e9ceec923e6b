package booking

import (
	"context"
	"time"

	"venuehub/internal/domain"
	"venuehub/internal/engine"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingDetails struct {
	ID        int64   `json:"id"`
	RequestID string  `json:"request_id"`
	Date      string  `json:"date"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	SpaceID   int64   `json:"space_id"`
	SpaceName string  `json:"space_name"`
}

type Service struct {
	bookings   BookingRepository
	spaces     SpaceRepository
	notifs     NotificationSender
	plans      ProtectionPlanProvider
	cal        engine.Calendar
	windowDays int
	now        func() time.Time
}

func NewService(
	bookings BookingRepository,
	spaces SpaceRepository,
	notifs NotificationSender,
	plans ProtectionPlanProvider,
	cal engine.Calendar,
	windowDays int,
) *Service {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &Service{
		bookings:   bookings,
		spaces:     spaces,
		notifs:     notifs,
		plans:      plans,
		cal:        cal,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// engineConfig snapshots a space's booking rules for one computation.
func engineConfig(s *domain.Space) engine.Config {
	return engine.Config{
		HourlyPrice:          s.HourlyPrice,
		Currency:             s.Currency,
		MaxGuests:            s.MaxGuests,
		AllowZeroGuests:      s.AllowZeroGuests,
		FullDayHours:         s.FullDayHours,
		FullDayDiscountPrice: s.FullDayDiscountPrice,
		CooldownMinutes:      s.CooldownMinutes,
		BlockedWeekdays:      s.BlockedWeekdays,
		Hours:                engine.ParseOperatingHours(s.OperatingHours),
	}
}

// dayTime maps a calendar date to the UTC midnight instant stored in the
// bookings.day column.
func dayTime(d engine.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func dateFromDB(t time.Time) engine.Date {
	t = t.UTC()
	return engine.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (s *Service) loadAvailability(ctx context.Context, space *domain.Space, from engine.Date, days int, now engine.Moment) (engine.Availability, error) {
	occupied, err := s.bookings.GetOccupiedSlots(ctx, space.ID, dayTime(from), dayTime(from.AddDays(days)))
	if err != nil {
		return engine.Availability{}, err
	}

	windows := make([]engine.Window, 0, len(occupied))
	for _, o := range occupied {
		windows = append(windows, engine.Window{
			Day:   dateFromDB(o.Day),
			Start: o.StartMinute,
			End:   o.EndMinute,
		})
	}

	rng := engine.DateRange{From: from, Days: days}
	return engine.ResolveAvailability(engineConfig(space), windows, rng, now), nil
}

// GetAvailability returns the bookable dates and hourly slots for a space
// over the requested horizon, starting today unless a from date is given.
func (s *Service) GetAvailability(ctx context.Context, spaceID int64, fromStr string, days int) (*AvailabilityResponse, error) {
	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	now := s.cal.At(s.now())
	from := now.Day
	if fromStr != "" {
		if from, err = s.cal.ParseDate(fromStr); err != nil {
			return nil, err
		}
	}
	if days <= 0 || days > s.windowDays {
		days = s.windowDays
	}

	avail, err := s.loadAvailability(ctx, space, from, days, now)
	if err != nil {
		return nil, err
	}

	resp := &AvailabilityResponse{
		SpaceID:       spaceID,
		From:          from.String(),
		Days:          days,
		BookableDates: make([]string, 0, len(avail.BookableDates)),
		SlotsByDate:   make(map[string][]SlotView, len(avail.SlotsByDate)),
	}
	for _, day := range avail.BookableDates {
		key := day.String()
		resp.BookableDates = append(resp.BookableDates, key)
		for _, slot := range avail.SlotsByDate[day] {
			resp.SlotsByDate[key] = append(resp.SlotsByDate[key], SlotView{
				Start: engine.FormatClock(slot.Start),
				End:   engine.FormatClock(slot.End),
			})
		}
	}
	return resp, nil
}

func (s *Service) parseSlots(reqs []SlotRequest) ([]engine.Slot, error) {
	slots := make([]engine.Slot, 0, len(reqs))
	for _, r := range reqs {
		day, err := s.cal.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		start, err := engine.ParseClock(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := engine.ParseClock(r.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, engine.Slot{Day: day, Start: start, End: end})
	}
	return slots, nil
}

// validateAgainstCalendar resolves availability from today through the
// furthest requested day (capped at the booking window, so anything beyond
// the horizon comes back unavailable) and runs the slot validator.
func (s *Service) validateAgainstCalendar(ctx context.Context, space *domain.Space, slots []engine.Slot, guests int) error {
	now := s.cal.At(s.now())

	maxDay := now.Day
	for _, slot := range slots {
		if maxDay.Before(slot.Day) {
			maxDay = slot.Day
		}
	}
	days := now.Day.DaysUntil(maxDay) + 1
	if days > s.windowDays {
		days = s.windowDays
	}

	avail, err := s.loadAvailability(ctx, space, now.Day, days, now)
	if err != nil {
		return err
	}
	return engine.ValidateSlots(slots, avail, guests, engineConfig(space))
}

func (s *Service) protectionFee(ctx context.Context, spaceID int64, selected bool) (float64, bool, error) {
	if !selected || s.plans == nil {
		return 0, false, nil
	}
	fee, available, err := s.plans.Fee(ctx, spaceID)
	if err != nil {
		return 0, false, err
	}
	if !available {
		return 0, false, nil
	}
	return fee, true, nil
}

// QuotePricing validates the requested slots and prices them without
// persisting anything.
func (s *Service) QuotePricing(ctx context.Context, req QuoteRequest) (*engine.Quote, error) {
	space, err := s.spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	slots, err := s.parseSlots(req.Slots)
	if err != nil {
		return nil, err
	}
	if err := s.validateAgainstCalendar(ctx, space, slots, req.Guests); err != nil {
		return nil, err
	}

	fee, selected, err := s.protectionFee(ctx, req.SpaceID, req.ProtectionPlan)
	if err != nil {
		return nil, err
	}

	quote, err := engine.ComputePricing(slots, engineConfig(space), selected, fee)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// CreateBooking validates a multi-slot submission, prices it, and persists
// one pending row per slot under a shared request id. The slot validation
// here is advisory; exclusivity under concurrent submissions is enforced
// by the idx_no_overbooking constraint at insert time.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	if len(req.Slots) == 0 {
		return nil, ErrEmptyRequest
	}

	space, err := s.spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	slots, err := s.parseSlots(req.Slots)
	if err != nil {
		return nil, err
	}
	if err := s.validateAgainstCalendar(ctx, space, slots, req.Guests); err != nil {
		return nil, err
	}

	fee, selected, err := s.protectionFee(ctx, req.SpaceID, req.ProtectionPlan)
	if err != nil {
		return nil, err
	}
	quote, err := engine.ComputePricing(slots, engineConfig(space), selected, fee)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	rows := make([]*domain.Booking, 0, len(slots))
	for i, slot := range slots {
		b := &domain.Booking{
			RequestID:   requestID,
			SpaceID:     req.SpaceID,
			ClientID:    req.ClientID,
			Day:         dayTime(slot.Day),
			StartMinute: slot.Start,
			EndMinute:   slot.End,
			Guests:      req.Guests,
			Price:       quote.Lines[i].Price,
			Tier:        quote.Lines[i].Tier,
			Status:      domain.BookingPending,
		}
		if i == 0 {
			b.ProtectionFee = quote.ProtectionPlanFee
		}
		rows = append(rows, b)
	}

	if err := s.bookings.CreateAll(ctx, rows); err != nil {
		// 23P01 exclusion_violation is what the gist constraint raises;
		// 23505 covers a plain unique index standing in for it.
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "idx_no_overbooking" {
				return nil, ErrOverbooking
			}
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingRequested(ctx, space.HostID, requestID, space.ID, len(rows))
	}

	result := &CreateBookingResult{RequestID: requestID, Quote: quote}
	for _, b := range rows {
		result.Bookings = append(result.Bookings, BookingSummary{
			ID:     b.ID,
			Date:   dateFromDB(b.Day).String(),
			Start:  engine.FormatClock(b.StartMinute),
			End:    engine.FormatClock(b.EndMinute),
			Price:  b.Price,
			Status: string(b.Status),
		})
	}
	return result, nil
}

// Decide lets the space's host approve or reject a submission. The whole
// request moves together: approving one slot approves its siblings.
func (s *Service) Decide(ctx context.Context, bookingID, actorID int64, actorRole string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if actorRole != string(domain.RoleHost) {
		return nil, ErrForbidden
	}
	if newStatus != domain.BookingApproved && newStatus != domain.BookingRejected {
		return nil, ErrInvalidStatusTransition
	}

	hostID, currentStatus, err := s.bookings.GetSpaceHostForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if hostID == 0 && currentStatus == "" {
		return nil, ErrNotFound
	}
	if hostID != actorID {
		return nil, ErrForbidden
	}
	if !domain.BookingStatus(currentStatus).Occupies() || currentStatus == string(domain.BookingApproved) {
		return nil, ErrInvalidStatusTransition
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatusByRequest(ctx, b.RequestID, string(newStatus)); err != nil {
		return nil, err
	}
	b.Status = newStatus

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingDecision(ctx, b.ClientID, b.RequestID, b.SpaceID, newStatus)
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, clientID int64, limit, offset int) ([]BookingDetails, error) {
	rows, err := s.bookings.GetClientBookings(ctx, clientID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:        r.ID,
			RequestID: r.RequestID,
			Date:      dateFromDB(r.Day).String(),
			Start:     engine.FormatClock(r.StartMinute),
			End:       engine.FormatClock(r.EndMinute),
			Price:     r.Price,
			Status:    r.Status,
			SpaceID:   r.SpaceID,
			SpaceName: r.SpaceName,
		})
	}
	return out, nil
}
