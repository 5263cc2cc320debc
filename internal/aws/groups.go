package aws

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	pkgtypes "github.com/vietdv277/asgcfg/pkg/types"
)

// ListGroupsInput contains parameters for listing Auto Scaling Groups
type ListGroupsInput struct {
	NamePattern string
	Names       []string
}

// ListGroups returns summaries of Auto Scaling Groups, optionally filtered
// by an exact name set or a case-insensitive name pattern.
func (c *Client) ListGroups(input *ListGroupsInput) ([]pkgtypes.GroupSummary, error) {
	if input == nil {
		input = &ListGroupsInput{}
	}

	var allGroups []asgtypes.AutoScalingGroup
	var nextToken *string

	for {
		describeInput := &autoscaling.DescribeAutoScalingGroupsInput{
			NextToken: nextToken,
		}

		if len(input.Names) > 0 {
			describeInput.AutoScalingGroupNames = input.Names
		}

		output, err := c.ASG.DescribeAutoScalingGroups(c.ctx, describeInput)
		if err != nil {
			return nil, fmt.Errorf("failed to describe auto scaling groups: %w", err)
		}

		allGroups = append(allGroups, output.AutoScalingGroups...)

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	var groups []pkgtypes.GroupSummary
	for _, g := range allGroups {
		summary := toGroupSummary(g)

		if input.NamePattern != "" {
			if !strings.Contains(strings.ToLower(summary.Name), strings.ToLower(input.NamePattern)) {
				continue
			}
		}

		groups = append(groups, summary)
	}

	return groups, nil
}

// toGroupSummary converts an AWS ASG record to the listing summary
func toGroupSummary(g asgtypes.AutoScalingGroup) pkgtypes.GroupSummary {
	return pkgtypes.GroupSummary{
		Name:             deref(g.AutoScalingGroupName),
		LaunchConfigName: deref(g.LaunchConfigurationName),
		DesiredCapacity:  int(deref32(g.DesiredCapacity)),
		MinSize:          int(deref32(g.MinSize)),
		MaxSize:          int(deref32(g.MaxSize)),
		AZs:              g.AvailabilityZones,
	}
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// deref32 safely dereferences an int32 pointer
func deref32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

// derefBool safely dereferences a bool pointer
func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
