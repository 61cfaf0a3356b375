package store

const (
	AdvisoryTableName        = "advisories"
	AffectedPackageTableName = "affected_packages"
)

// Advisory is one row of the advisories table. Array- and object-valued
// attributes are serialized JSON; nullable columns are pointers so that an
// absent source field stores a true NULL.
type Advisory struct {
	GHSA             string  `gorm:"column:ghsa;primaryKey"`
	SchemaVersion    *string `gorm:"column:schema_version"`
	Modified         string  `gorm:"column:modified;not null"`
	Published        *string `gorm:"column:published"`
	Withdrawn        *string `gorm:"column:withdrawn"`
	CVE              *string `gorm:"column:cve"`
	Ecosystems       *string `gorm:"column:ecosystems"`
	Summary          *string `gorm:"column:summary"`
	Details          *string `gorm:"column:details"`
	Severity         *string `gorm:"column:severity"`
	CWEs             *string `gorm:"column:cwes"`
	GithubReviewed   *bool   `gorm:"column:github_reviewed"`
	GithubReviewedAt *string `gorm:"column:github_reviewed_at"`
	NVDPublishedAt   *string `gorm:"column:nvd_published_at"`
	RefCommits       *string `gorm:"column:ref_commits"`
	RefPullRequests  *string `gorm:"column:ref_pull_requests"`
}

func (Advisory) TableName() string {
	return AdvisoryTableName
}

// AffectedPackage is one row of the affected_packages table. The ghsa column
// is the natural join key back to advisories; it is intentionally not a
// relational foreign key.
type AffectedPackage struct {
	GHSA      string  `gorm:"column:ghsa"`
	Name      string  `gorm:"column:name;not null"`
	Ecosystem string  `gorm:"column:ecosystem;not null"`
	Ranges    *string `gorm:"column:ranges"`
	Versions  *string `gorm:"column:versions"`
}

func (AffectedPackage) TableName() string {
	return AffectedPackageTableName
}
