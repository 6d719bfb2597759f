package assistant

import (
	"context"
	"fmt"
	"strings"

	"go-eventcrm/internal/features/venue"

	"go.uber.org/zap"
)

const systemInstruction = "You are a helpful assistant for an event management CRM. " +
	"You provide clear and concise information about venues based on the data provided."

const fallbackReply = "Sorry, I encountered an error while trying to get an answer. Please try again later."

type AssistantService interface {
	AskAboutVenue(ctx context.Context, venueID, question string) (string, error)
}

type AssistantServiceImpl struct {
	VenueService venue.VenueService
	Client       *GeminiClient
	Logger       *zap.Logger
}

func NewAssistantService(venueService venue.VenueService, client *GeminiClient, logger *zap.Logger) AssistantService {
	return &AssistantServiceImpl{
		VenueService: venueService,
		Client:       client,
		Logger:       logger,
	}
}

// buildVenueContext flattens the venue document into the prompt block
// the model answers from.
func buildVenueContext(v *venue.Venue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant Name: %s\n", v.Name)
	fmt.Fprintf(&b, "Address: %s, %s\n", v.Address, v.District)
	fmt.Fprintf(&b, "Capacity: from %d to %d people.\n", v.CapacityMin, v.CapacityMax)
	fmt.Fprintf(&b, "Base Rental Fee: %.0f AZN.\n\n", v.BaseRentalFee)

	b.WriteString("Policies:\n")
	fmt.Fprintf(&b, "- Price per person: from %.0f to %.0f AZN.\n", v.Policies.PricePerPersonAznFrom, v.Policies.PricePerPersonAznTo)
	fmt.Fprintf(&b, "- Alcohol allowed: %s.\n", yesNo(v.Policies.AlcoholAllowed))
	fmt.Fprintf(&b, "- Corkage fee: %.0f AZN.\n", v.Policies.CorkageFeeAzn)
	fmt.Fprintf(&b, "- Outside catering allowed: %s.\n\n", yesNo(v.Policies.OutsideCateringOK))

	fmt.Fprintf(&b, "Cuisine: %s.\n", strings.Join(v.Cuisine, ", "))
	fmt.Fprintf(&b, "Facilities: %s.\n", strings.Join(v.Facilities, ", "))
	fmt.Fprintf(&b, "Services: %s.\n", strings.Join(v.Services, ", "))
	fmt.Fprintf(&b, "Suitable for: %s.\n\n", strings.Join(v.SuitableFor, ", "))

	fmt.Fprintf(&b, "Contact Person: %s\n", v.Contact.Person)
	fmt.Fprintf(&b, "Contact Phone: %s\n", v.Contact.Phone)
	fmt.Fprintf(&b, "Contact Email: %s", v.Contact.Email)
	return b.String()
}

func buildPrompt(v *venue.Venue, question string) string {
	return fmt.Sprintf(
		"Based on the following information about a restaurant, answer the user's question.\n"+
			"Keep your answer concise and helpful.\n\n"+
			"Restaurant Information:\n%s\n\nUser's Question: %q",
		buildVenueContext(v), question)
}

// AskAboutVenue answers a question about one venue. Model failures are
// swallowed into the fallback reply so the chat panel never errors out.
func (s *AssistantServiceImpl) AskAboutVenue(ctx context.Context, venueID, question string) (string, error) {
	v, err := s.VenueService.GetVenueByID(ctx, venueID)
	if err != nil {
		return "", err
	}

	reply, err := s.Client.Generate(ctx, systemInstruction, buildPrompt(v, question))
	if err != nil {
		s.Logger.Warn("assistant call failed",
			zap.String("venue_id", venueID),
			zap.Error(err))
		return fallbackReply, nil
	}

	return reply, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
