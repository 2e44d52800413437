package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"go.uber.org/zap"
)

type Notifier interface {
	NotifyTravelBooking(customer models.Customer, booking models.TravelAgentBooking) error
	// NotifyCompensationFailure reports a booking leg that could not be
	// rolled back and now needs manual cleanup.
	NotifyCompensationFailure(sagaID, step string, cause error) error
}

// Nop drops every notification.
type Nop struct{}

func (Nop) NotifyTravelBooking(models.Customer, models.TravelAgentBooking) error { return nil }
func (Nop) NotifyCompensationFailure(string, string, error) error                 { return nil }

type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   messageSender
	channelID string
	logger    *zap.Logger
}

func NewDiscordNotifier(session *discordgo.Session, channelID string, logger *zap.Logger) *DiscordNotifier {
	n := &DiscordNotifier{channelID: channelID, logger: logger}
	if session != nil {
		n.session = session
	}
	return n
}

func (n *DiscordNotifier) NotifyTravelBooking(customer models.Customer, booking models.TravelAgentBooking) error {
	message := fmt.Sprintf("✈️ **Travel Booking #%d**\n**Customer:** %s %s (%s)\n**Flight booking:** %d\n**Taxi booking:** %d\n**Hotel booking:** %d",
		booking.ID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		booking.FlightBookingID,
		booking.TaxiBookingID,
		booking.HotelBookingID,
	)
	return n.send(message)
}

func (n *DiscordNotifier) NotifyCompensationFailure(sagaID, step string, cause error) error {
	message := fmt.Sprintf("🚨 **Rollback failed**\n**Saga:** %s\n**Step:** %s\n**Error:** %v\nThe booking created by this step was not removed.",
		sagaID,
		step,
		cause,
	)
	return n.send(message)
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		n.logger.Warn("failed to send discord message", zap.String("channel_id", n.channelID), zap.Error(err))
		return err
	}

	return nil
}
