package manifest

// Filter returns the entries that may enter the registry, in upstream order:
// releases at or after ReleaseCutoff and every snapshot. old_alpha,
// old_beta and any kind upstream might add later are dropped.
func Filter(versions []UpstreamVersion) []UpstreamVersion {
	kept := make([]UpstreamVersion, 0, len(versions))
	for _, v := range versions {
		switch v.Type {
		case KindRelease:
			if v.ReleaseTime.Before(ReleaseCutoff) {
				continue
			}
		case KindSnapshot:
		default:
			continue
		}
		kept = append(kept, v)
	}
	return kept
}
