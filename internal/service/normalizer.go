package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/internal/model"
)

func docID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// Hardcoded fallbacks applied when neither the profile nor the content
// document supplies a value. The rendering layer must never see a missing
// field.
const (
	defaultName              = "Portfolio"
	defaultCVURL             = "/cv.pdf"
	defaultProfilePictureURL = "/profile.jpg"
	defaultEmail             = "contact@example.com"
)

var (
	defaultTitle = model.NewLocalized("Developer", "Developer")
	defaultAbout = model.NewLocalized("Tentang saya", "About me")
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mergeLocalized picks, per locale, the first non-empty value from the
// primary document, then the secondary document, then the default.
func mergeLocalized(primary, secondary, def model.LocalizedString) model.LocalizedString {
	return model.NewLocalized(
		firstNonEmpty(primary.Get(model.LocaleID), secondary.Get(model.LocaleID), def.Get(model.LocaleID)),
		firstNonEmpty(primary.Get(model.LocaleEN), secondary.Get(model.LocaleEN), def.Get(model.LocaleEN)),
	)
}

// mergePortfolio assembles the top-level portfolio fields from the profile
// and content documents, profile taking precedence, with hardcoded defaults
// when both are absent. Either document may be nil.
func mergePortfolio(profile, content *model.ProfileDoc) model.Portfolio {
	if profile == nil {
		profile = &model.ProfileDoc{}
	}
	if content == nil {
		content = &model.ProfileDoc{}
	}
	profileContact := profile.Contact
	if profileContact == nil {
		profileContact = &model.ContactDoc{}
	}
	contentContact := content.Contact
	if contentContact == nil {
		contentContact = &model.ContactDoc{}
	}
	return model.Portfolio{
		Name:              firstNonEmpty(profile.Name, content.Name, defaultName),
		Title:             mergeLocalized(profile.Title, content.Title, defaultTitle),
		About:             mergeLocalized(profile.About, content.About, defaultAbout),
		CVURL:             firstNonEmpty(profile.CVURL, content.CVURL, defaultCVURL),
		ProfilePictureURL: firstNonEmpty(profile.ProfilePictureURL, content.ProfilePictureURL, defaultProfilePictureURL),
		Contact: model.Contact{
			Email:    firstNonEmpty(profileContact.Email, contentContact.Email, defaultEmail),
			LinkedIn: firstNonEmpty(profileContact.LinkedIn, contentContact.LinkedIn),
		},
	}
}

func normalizeProjects(docs []model.ProjectDoc) []model.Project {
	out := make([]model.Project, 0, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title.IsZero() {
			title = model.NewLocalized(doc.Name, doc.Name)
		}
		tags := doc.Tags
		if tags == nil {
			tags = doc.Technologies
		}
		if tags == nil {
			tags = []string{}
		}
		out = append(out, model.Project{
			ID:          docID(doc.ID),
			Title:       title,
			ImageURL:    firstNonEmpty(doc.ImageURL, doc.Image),
			ImageHint:   firstNonEmpty(doc.ImageHint, doc.Hint),
			Description: doc.Description,
			Details:     firstNonEmpty(doc.Details, doc.Detail),
			Tags:        tags,
			Link:        firstNonEmpty(doc.Link, doc.URL),
		})
	}
	return out
}

func normalizeEducation(docs []model.EducationDoc) []model.EducationItem {
	out := make([]model.EducationItem, 0, len(docs))
	for _, doc := range docs {
		degree := doc.Degree
		if degree.IsZero() {
			degree = model.NewLocalized(doc.Title, doc.Title)
		}
		school := doc.School
		if school.IsZero() {
			school = doc.Institution
		}
		out = append(out, model.EducationItem{
			ID:     docID(doc.ID),
			Degree: degree,
			School: school,
			Period: firstNonEmpty(doc.Period, doc.Year),
		})
	}
	return out
}

func normalizeCertificates(docs []model.CertificateDoc) []model.Certificate {
	out := make([]model.Certificate, 0, len(docs))
	for _, doc := range docs {
		name := doc.Name
		if name.IsZero() {
			name = doc.Title
		}
		out = append(out, model.Certificate{
			ID:          docID(doc.ID),
			Name:        name,
			Description: doc.Description,
			ImageURL:    firstNonEmpty(doc.ImageURL, doc.Image),
			ImageHint:   firstNonEmpty(doc.ImageHint, doc.Hint),
			Issuer:      firstNonEmpty(doc.Issuer, doc.Organization),
			Date:        firstNonEmpty(doc.Date, doc.Year),
			URL:         firstNonEmpty(doc.URL, doc.Link),
		})
	}
	return out
}

// skillNames extracts the display names of soft or hard skills, dropping
// documents that carry no name under either historical field.
func skillNames(docs []model.SkillDoc) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		if name := firstNonEmpty(doc.Name, doc.Skill); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func normalizeSoftwareSkills(docs []model.SoftwareSkillDoc) []model.SoftwareSkill {
	out := make([]model.SoftwareSkill, 0, len(docs))
	for _, doc := range docs {
		out = append(out, model.SoftwareSkill{
			ID:      docID(doc.ID),
			Name:    doc.Name,
			IconURL: firstNonEmpty(doc.IconURL, doc.Icon),
		})
	}
	return out
}
