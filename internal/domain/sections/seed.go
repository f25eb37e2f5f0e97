package sections

import "encoding/json"

// Seed inserts one section per type on an empty table so a fresh install
// renders a complete page. A table with any rows is left alone.
func (s *Service) Seed() error {
	var count int64
	if err := s.db.Table(s.table).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, def := range defaults(s.page) {
		def.DisplayOrder = i
		def.Visible = true
		if err := s.db.Table(s.table).Create(&def).Error; err != nil {
			return err
		}
	}
	return nil
}

func defaults(page Page) []Section {
	switch page {
	case PageCommission:
		return []Section{
			{SectionType: TypeStatus, Title: "Commission Status", Content: mustJSON(StatusContent{Status: "closed"})},
			{SectionType: TypeIntro, Title: "Introduction", Content: mustJSON(IntroContent{Text: "Every build starts with a conversation."})},
			{SectionType: TypeServices, Title: "Services", Content: mustJSON(ServicesContent{Items: []string{}})},
			{SectionType: TypePricing, Title: "Pricing", Content: mustJSON(PricingContent{Tiers: []PriceLine{}})},
			{SectionType: TypeSteps, Title: "How It Works", Content: mustJSON(StepsContent{Items: []Step{}})},
			{SectionType: TypeFAQ, Title: "FAQ", Content: mustJSON(FAQContent{Items: []QA{}})},
			{SectionType: TypeLinks, Title: "Request a Commission", Content: mustJSON(LinksContent{})},
		}
	case PageAbout:
		return []Section{
			{SectionType: TypeHero, Title: "About", Content: mustJSON(HeroContent{Subtitle: "The person behind the builds."})},
			{SectionType: TypeBio, Title: "Bio", Content: mustJSON(BioContent{Text: "Hi, I build keyboards."})},
			{SectionType: TypePhilosophy, Title: "Philosophy", Content: mustJSON(PhilosophyContent{Text: "Slow, deliberate, finished."})},
			{SectionType: TypeDiscord, Title: "Discord", Content: mustJSON(DiscordContent{DiscordIDs: []string{}})},
			{SectionType: TypeLinks, Title: "Links", Content: mustJSON(SocialLinksContent{Items: []SocialLink{}})},
		}
	default:
		return nil
	}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
