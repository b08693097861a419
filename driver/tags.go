package driver

import (
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

func ec2Tags(tags map[string]string) []*ec2.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ec2tags := make([]*ec2.Tag, 0, len(keys))
	for _, k := range keys {
		ec2tags = append(ec2tags, &ec2.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return ec2tags
}

func tagSpecifications(resourceType string, tags map[string]string) []*ec2.TagSpecification {
	if len(tags) == 0 {
		return nil
	}

	return []*ec2.TagSpecification{
		{
			ResourceType: aws.String(resourceType),
			Tags:         ec2Tags(tags),
		},
	}
}
