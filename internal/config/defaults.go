package config

const (
	defaultDataDir                = "~/.local/share/entitymatch/data"
	defaultLogDir                 = "~/.local/share/entitymatch/logs"
	defaultRegistryURL            = "https://data.colorado.gov/api/views/4ykn-tg5h/rows.csv?accessType=DOWNLOAD"
	defaultJurisdiction           = "CO"
	defaultCacheMaxAgeDays        = 7
	defaultDownloadTimeoutSeconds = 300
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"

	defaultNameThreshold          = 85
	defaultAddressThreshold       = 70
	defaultMinNameSimilarity      = 45
	defaultNameBucketTolerance    = 3
	defaultAddressBucketTolerance = 5
	defaultCityBlockZipCutoff     = 100
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Registry: Registry{
			URL:                    defaultRegistryURL,
			Jurisdiction:           defaultJurisdiction,
			CacheMaxAgeDays:        defaultCacheMaxAgeDays,
			DownloadTimeoutSeconds: defaultDownloadTimeoutSeconds,
		},
		Matching: Matching{
			NameThreshold:          defaultNameThreshold,
			AddressThreshold:       defaultAddressThreshold,
			MinNameSimilarity:      defaultMinNameSimilarity,
			NameBucketTolerance:    defaultNameBucketTolerance,
			AddressBucketTolerance: defaultAddressBucketTolerance,
			CityBlockZipCutoff:     defaultCityBlockZipCutoff,
			Workers:                0,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
