package kakao

import (
	"fmt"
	"path/filepath"
	"regexp"
)

var (
	csvNamePattern = regexp.MustCompile(`KakaoTalk_Chat_(.+)_(\d{4})-(\d{2})-(\d{2})-(\d{2})-(\d{2})`)
	zipNamePattern = regexp.MustCompile(`[Kk]akao[Tt]alk_Chat_(.+)_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})`)
)

// MetaFromCSVName reads "KakaoTalk_Chat_<room>_YYYY-MM-DD-HH-MM(-SS).csv".
func MetaFromCSVName(name string) ChatMeta {
	return metaFromName(csvNamePattern, name)
}

// MetaFromZIPName reads "Kakaotalk_Chat_<room>_YYYYMMDD_HHMMSS.zip".
func MetaFromZIPName(name string) ChatMeta {
	return metaFromName(zipNamePattern, name)
}

func metaFromName(pattern *regexp.Regexp, name string) ChatMeta {
	if name == "" {
		return ChatMeta{}
	}
	m := pattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return ChatMeta{}
	}
	return ChatMeta{
		RoomName: m[1],
		SavedAt:  fmt.Sprintf("%s/%s/%s-%s:%s", m[2], m[3], m[4], m[5], m[6]),
	}
}
