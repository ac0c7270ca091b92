package constants

import "time"

// 公开读取接口的缓存，任何写操作都会清理对应的 key
const (
	CacheKeyProfile        = "portfolio:profile"
	CacheKeySkills         = "portfolio:skills"
	CacheKeyExperience     = "portfolio:experience"
	CacheKeyEducation      = "portfolio:education"
	CacheKeyCertifications = "portfolio:certifications"
	CacheKeyProjects       = "portfolio:projects:%s" // %s -> all / visible
	CacheKeyProject        = "portfolio:project:%d"  // %d -> project id
)

const (
	CacheExpireContent = 12 * time.Hour
)
