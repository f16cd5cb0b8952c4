package model

// Contact holds the public contact channels.
type Contact struct {
	Email    string `json:"email" bson:"email,omitempty"`
	LinkedIn string `json:"linkedin" bson:"linkedin,omitempty"`
}

// Project is a portfolio project in canonical form.
type Project struct {
	ID          string          `json:"_id,omitempty" bson:"-"`
	Title       LocalizedString `json:"title" bson:"title"`
	ImageURL    string          `json:"imageUrl" bson:"imageUrl"`
	ImageHint   string          `json:"imageHint" bson:"imageHint"`
	Description LocalizedString `json:"description" bson:"description"`
	Details     string          `json:"details" bson:"details"`
	Tags        []string        `json:"tags" bson:"tags"`
	Link        string          `json:"link" bson:"link"`
}

// EducationItem is an education entry in canonical form.
type EducationItem struct {
	ID     string          `json:"_id,omitempty" bson:"-"`
	Degree LocalizedString `json:"degree" bson:"degree"`
	School LocalizedString `json:"school" bson:"school"`
	Period string          `json:"period" bson:"period"`
}

// Certificate is a certificate entry in canonical form.
type Certificate struct {
	ID          string          `json:"_id,omitempty" bson:"-"`
	Name        LocalizedString `json:"name" bson:"name"`
	Description LocalizedString `json:"description" bson:"description"`
	ImageURL    string          `json:"imageUrl" bson:"imageUrl"`
	ImageHint   string          `json:"imageHint" bson:"imageHint"`
	Issuer      string          `json:"issuer" bson:"issuer"`
	Date        string          `json:"date" bson:"date"`
	URL         string          `json:"url" bson:"url"`
}

// SoftwareSkill is a tool or technology with an icon.
type SoftwareSkill struct {
	ID      string `json:"_id,omitempty" bson:"-"`
	Name    string `json:"name" bson:"name"`
	IconURL string `json:"iconUrl" bson:"iconUrl"`
}

// Portfolio is the canonical content model consumed by rendering. Every
// field is populated: absent stored values are replaced by defaults during
// normalization, so callers never see a missing value.
type Portfolio struct {
	Name              string          `json:"name"`
	Title             LocalizedString `json:"title"`
	About             LocalizedString `json:"about"`
	CVURL             string          `json:"cvUrl"`
	ProfilePictureURL string          `json:"profilePictureUrl"`
	Contact           Contact         `json:"contact"`
	SoftSkills        []string        `json:"softSkills"`
	HardSkills        []string        `json:"hardSkills"`
	SoftwareSkills    []SoftwareSkill `json:"softwareSkills"`
	Projects          []Project       `json:"projects"`
	Education         []EducationItem `json:"education"`
	Certificates      []Certificate   `json:"certificates"`
}

// LocalizedProject is a Project flattened to a single locale.
type LocalizedProject struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	ImageURL    string   `json:"imageUrl"`
	ImageHint   string   `json:"imageHint"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

// LocalizedEducationItem is an EducationItem flattened to a single locale.
type LocalizedEducationItem struct {
	ID     string `json:"_id,omitempty"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Period string `json:"period"`
}

// LocalizedCertificate is a Certificate flattened to a single locale.
type LocalizedCertificate struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	URL         string `json:"url"`
}

// LocalizedPortfolio is the portfolio with every localized field resolved
// for one locale.
type LocalizedPortfolio struct {
	Locale            Locale                   `json:"locale"`
	Name              string                   `json:"name"`
	Title             string                   `json:"title"`
	About             string                   `json:"about"`
	CVURL             string                   `json:"cvUrl"`
	ProfilePictureURL string                   `json:"profilePictureUrl"`
	Contact           Contact                  `json:"contact"`
	SoftSkills        []string                 `json:"softSkills"`
	HardSkills        []string                 `json:"hardSkills"`
	SoftwareSkills    []SoftwareSkill          `json:"softwareSkills"`
	Projects          []LocalizedProject       `json:"projects"`
	Education         []LocalizedEducationItem `json:"education"`
	Certificates      []LocalizedCertificate   `json:"certificates"`
}

// Localize resolves every localized field for the given locale. The same
// three-tier resolution applies uniformly: bare string verbatim, requested
// locale, default locale, then the empty fallback.
func (p *Portfolio) Localize(locale Locale) *LocalizedPortfolio {
	out := &LocalizedPortfolio{
		Locale:            locale,
		Name:              p.Name,
		Title:             p.Title.Resolve(locale, ""),
		About:             p.About.Resolve(locale, ""),
		CVURL:             p.CVURL,
		ProfilePictureURL: p.ProfilePictureURL,
		Contact:           p.Contact,
		SoftSkills:        p.SoftSkills,
		HardSkills:        p.HardSkills,
		SoftwareSkills:    p.SoftwareSkills,
	}
	for _, pr := range p.Projects {
		out.Projects = append(out.Projects, LocalizedProject{
			ID:          pr.ID,
			Title:       pr.Title.Resolve(locale, ""),
			ImageURL:    pr.ImageURL,
			ImageHint:   pr.ImageHint,
			Description: pr.Description.Resolve(locale, ""),
			Details:     pr.Details,
			Tags:        pr.Tags,
			Link:        pr.Link,
		})
	}
	for _, edu := range p.Education {
		out.Education = append(out.Education, LocalizedEducationItem{
			ID:     edu.ID,
			Degree: edu.Degree.Resolve(locale, ""),
			School: edu.School.Resolve(locale, ""),
			Period: edu.Period,
		})
	}
	for _, cert := range p.Certificates {
		out.Certificates = append(out.Certificates, LocalizedCertificate{
			ID:          cert.ID,
			Name:        cert.Name.Resolve(locale, ""),
			Description: cert.Description.Resolve(locale, ""),
			ImageURL:    cert.ImageURL,
			ImageHint:   cert.ImageHint,
			Issuer:      cert.Issuer,
			Date:        cert.Date,
			URL:         cert.URL,
		})
	}
	return out
}
