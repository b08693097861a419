package resources

//counterfeiter:generate . TagDriver
type TagDriver interface {
	Tag(resourceID string, tags map[string]string) error
}
