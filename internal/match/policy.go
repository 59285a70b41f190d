package match

import "entitymatch/internal/config"

// Policy centralizes matching thresholds and disambiguation rules.
type Policy struct {
	NameThreshold          int
	AddressThreshold       int
	MinNameSimilarity      int
	NameBucketTolerance    int
	AddressBucketTolerance int
	CityBlockZipCutoff     int
}

// DefaultPolicy returns the tuned production thresholds.
func DefaultPolicy() Policy {
	return Policy{
		NameThreshold:          85,
		AddressThreshold:       70,
		MinNameSimilarity:      45,
		NameBucketTolerance:    3,
		AddressBucketTolerance: 5,
		CityBlockZipCutoff:     100,
	}
}

// PolicyFromConfig builds a Policy from the matching configuration section.
func PolicyFromConfig(m config.Matching) Policy {
	return Policy{
		NameThreshold:          m.NameThreshold,
		AddressThreshold:       m.AddressThreshold,
		MinNameSimilarity:      m.MinNameSimilarity,
		NameBucketTolerance:    m.NameBucketTolerance,
		AddressBucketTolerance: m.AddressBucketTolerance,
		CityBlockZipCutoff:     m.CityBlockZipCutoff,
	}.normalized()
}

func (p Policy) normalized() Policy {
	d := DefaultPolicy()

	if p.NameThreshold <= 0 || p.NameThreshold > 100 {
		p.NameThreshold = d.NameThreshold
	}
	if p.AddressThreshold <= 0 || p.AddressThreshold > 100 {
		p.AddressThreshold = d.AddressThreshold
	}
	if p.MinNameSimilarity <= 0 || p.MinNameSimilarity > 100 {
		p.MinNameSimilarity = d.MinNameSimilarity
	}
	if p.NameBucketTolerance < 0 {
		p.NameBucketTolerance = d.NameBucketTolerance
	}
	if p.AddressBucketTolerance < 0 {
		p.AddressBucketTolerance = d.AddressBucketTolerance
	}
	if p.CityBlockZipCutoff <= 0 {
		p.CityBlockZipCutoff = d.CityBlockZipCutoff
	}

	return p
}
