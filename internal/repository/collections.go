package repository

// Collection names match the existing database and are a fixed contract.
const (
	CollectionProfile        = "profil_settings"
	CollectionContent        = "content"
	CollectionProjects       = "projects"
	CollectionEducation      = "education"
	CollectionCertificates   = "certificates"
	CollectionSoftSkills     = "soft_skills"
	CollectionHardSkills     = "hard_skills"
	CollectionSoftwareSkills = "software_skills"
)
