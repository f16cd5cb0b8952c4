package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Stored document shapes. The collections have drifted over time, so each
// shape enumerates the field names every historical revision used; the
// normalizer in the service layer maps them onto the canonical model. The
// aliases are fixed contracts, not guesses, and are never probed
// dynamically.

// ContactDoc is the stored contact sub-document.
type ContactDoc struct {
	Email    string `bson:"email,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty"`
}

// ProfileDoc is the stored shape shared by the profile settings document
// and the content document. Either may carry any subset of these fields.
type ProfileDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name,omitempty"`
	Title             LocalizedString    `bson:"title,omitempty"`
	About             LocalizedString    `bson:"about,omitempty"`
	CVURL             string             `bson:"cvUrl,omitempty"`
	ProfilePictureURL string             `bson:"profilePictureUrl,omitempty"`
	Contact           *ContactDoc        `bson:"contact,omitempty"`
}

// ProjectDoc is a stored project with its legacy aliases.
type ProjectDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        LocalizedString    `bson:"title,omitempty"`
	Name         string             `bson:"name,omitempty"` // legacy alias for title
	ImageURL     string             `bson:"imageUrl,omitempty"`
	Image        string             `bson:"image,omitempty"` // legacy alias
	ImageHint    string             `bson:"imageHint,omitempty"`
	Hint         string             `bson:"hint,omitempty"` // legacy alias
	Description  LocalizedString    `bson:"description,omitempty"`
	Details      string             `bson:"details,omitempty"`
	Detail       string             `bson:"detail,omitempty"` // legacy alias
	Tags         []string           `bson:"tags,omitempty"`
	Technologies []string           `bson:"technologies,omitempty"` // legacy alias
	Link         string             `bson:"link,omitempty"`
	URL          string             `bson:"url,omitempty"` // legacy alias
}

// EducationDoc is a stored education entry with its legacy aliases.
type EducationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Degree      LocalizedString    `bson:"degree,omitempty"`
	Title       string             `bson:"title,omitempty"` // legacy alias for degree
	School      LocalizedString    `bson:"school,omitempty"`
	Institution LocalizedString    `bson:"institution,omitempty"` // legacy alias
	Period      string             `bson:"period,omitempty"`
	Year        string             `bson:"year,omitempty"` // legacy alias
}

// CertificateDoc is a stored certificate with its legacy aliases.
type CertificateDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         LocalizedString    `bson:"name,omitempty"`
	Title        LocalizedString    `bson:"title,omitempty"` // legacy alias for name
	Description  LocalizedString    `bson:"description,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty"`
	Image        string             `bson:"image,omitempty"` // legacy alias
	ImageHint    string             `bson:"imageHint,omitempty"`
	Hint         string             `bson:"hint,omitempty"` // legacy alias
	Issuer       string             `bson:"issuer,omitempty"`
	Organization string             `bson:"organization,omitempty"` // legacy alias
	Date         string             `bson:"date,omitempty"`
	Year         string             `bson:"year,omitempty"` // legacy alias
	URL          string             `bson:"url,omitempty"`
	Link         string             `bson:"link,omitempty"` // legacy alias
}

// SkillDoc is a stored soft or hard skill.
type SkillDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name,omitempty"`
	Skill string             `bson:"skill,omitempty"` // legacy alias
}

// SoftwareSkillDoc is a stored software skill.
type SoftwareSkillDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name,omitempty"`
	IconURL string             `bson:"iconUrl,omitempty"`
	Icon    string             `bson:"icon,omitempty"` // legacy alias
}
