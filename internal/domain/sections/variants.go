package sections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// The content column used to be free-form JSON trusted after a bare parse.
// Here each section_type maps to a concrete variant that is decoded strictly:
// unknown fields are rejected and required fields must be present.

var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrUnknownType    = errors.New("unknown section type")
	ErrInvalidContent = errors.New("invalid content")
)

// Page selects which family of section types a table carries.
type Page string

const (
	PageCommission Page = "commission"
	PageAbout      Page = "about"
)

// Commission section types.
const (
	TypeStatus   = "status"
	TypeIntro    = "intro"
	TypeServices = "services"
	TypePricing  = "pricing"
	TypeSteps    = "steps"
	TypeFAQ      = "faq"
	TypeLinks    = "links"
)

// About section types. Links is shared with commission.
const (
	TypeHero       = "hero"
	TypeBio        = "bio"
	TypePhilosophy = "philosophy"
	TypeDiscord    = "discord"
)

type StatusContent struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type IntroContent struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	ImageAlt string `json:"image_alt,omitempty"`
}

type ServicesContent struct {
	Items []string `json:"items"`
}

type PriceLine struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

type PricingContent struct {
	Note         string      `json:"note,omitempty"`
	ShippingNote string      `json:"shipping_note,omitempty"`
	Tiers        []PriceLine `json:"tiers"`
	Extras       []PriceLine `json:"extras,omitempty"`
}

type Step struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type StepsContent struct {
	Items []Step `json:"items"`
}

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQContent struct {
	Items []QA `json:"items"`
}

type LinksContent struct {
	FormURL   string `json:"form_url,omitempty"`
	FormLabel string `json:"form_label,omitempty"`
	Note      string `json:"note,omitempty"`
}

type HeroContent struct {
	Subtitle string `json:"subtitle"`
}

type BioContent struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	ImageAlt string `json:"image_alt,omitempty"`
}

type PhilosophyContent struct {
	Text  string   `json:"text"`
	Items []string `json:"items,omitempty"`
}

type DiscordContent struct {
	DiscordIDs    []string `json:"discord_ids"`
	DiscordInvite string   `json:"discord_invite,omitempty"`
	Note          string   `json:"note,omitempty"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SocialLinksContent struct {
	Items []SocialLink `json:"items"`
}

// Types returns the fixed section_type set of a page.
func (p Page) Types() []string {
	switch p {
	case PageCommission:
		return []string{TypeStatus, TypeIntro, TypeServices, TypePricing, TypeSteps, TypeFAQ, TypeLinks}
	case PageAbout:
		return []string{TypeHero, TypeBio, TypePhilosophy, TypeDiscord, TypeLinks}
	default:
		return nil
	}
}

func (p Page) hasType(sectionType string) bool {
	for _, t := range p.Types() {
		if t == sectionType {
			return true
		}
	}
	return false
}

// ValidateContent strictly decodes raw against the variant implied by
// sectionType. It returns ErrInvalidJSON for syntax errors, ErrUnknownType
// for a type outside the page's set, and ErrInvalidContent with detail for
// unknown or missing fields.
func (p Page) ValidateContent(sectionType string, raw []byte) error {
	if !json.Valid(raw) {
		return ErrInvalidJSON
	}
	if !p.hasType(sectionType) {
		return fmt.Errorf("%w: %q", ErrUnknownType, sectionType)
	}

	switch sectionType {
	case TypeStatus:
		var c StatusContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Status != "open" && c.Status != "closed" {
			return fmt.Errorf("%w: status must be \"open\" or \"closed\"", ErrInvalidContent)
		}
	case TypeIntro:
		var c IntroContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Text == "" {
			return fmt.Errorf("%w: text is required", ErrInvalidContent)
		}
	case TypeServices:
		var c ServicesContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Items == nil {
			return fmt.Errorf("%w: items is required", ErrInvalidContent)
		}
	case TypePricing:
		var c PricingContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Tiers == nil {
			return fmt.Errorf("%w: tiers is required", ErrInvalidContent)
		}
		for _, tier := range c.Tiers {
			if tier.Label == "" || tier.Price == "" {
				return fmt.Errorf("%w: every tier needs label and price", ErrInvalidContent)
			}
		}
	case TypeSteps:
		var c StepsContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Items == nil {
			return fmt.Errorf("%w: items is required", ErrInvalidContent)
		}
		for _, step := range c.Items {
			if step.Title == "" {
				return fmt.Errorf("%w: every step needs a title", ErrInvalidContent)
			}
		}
	case TypeFAQ:
		var c FAQContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Items == nil {
			return fmt.Errorf("%w: items is required", ErrInvalidContent)
		}
		for _, qa := range c.Items {
			if qa.Question == "" || qa.Answer == "" {
				return fmt.Errorf("%w: every entry needs question and answer", ErrInvalidContent)
			}
		}
	case TypeLinks:
		if p == PageAbout {
			var c SocialLinksContent
			if err := decodeStrict(raw, &c); err != nil {
				return err
			}
			if c.Items == nil {
				return fmt.Errorf("%w: items is required", ErrInvalidContent)
			}
			for _, link := range c.Items {
				if link.Label == "" || link.URL == "" {
					return fmt.Errorf("%w: every link needs label and url", ErrInvalidContent)
				}
			}
			break
		}
		var c LinksContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
	case TypeHero:
		var c HeroContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Subtitle == "" {
			return fmt.Errorf("%w: subtitle is required", ErrInvalidContent)
		}
	case TypeBio:
		var c BioContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Text == "" {
			return fmt.Errorf("%w: text is required", ErrInvalidContent)
		}
	case TypePhilosophy:
		var c PhilosophyContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.Text == "" {
			return fmt.Errorf("%w: text is required", ErrInvalidContent)
		}
	case TypeDiscord:
		var c DiscordContent
		if err := decodeStrict(raw, &c); err != nil {
			return err
		}
		if c.DiscordIDs == nil {
			return fmt.Errorf("%w: discord_ids is required", ErrInvalidContent)
		}
	}
	return nil
}

func decodeStrict(raw []byte, into any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}
