package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/stretchr/testify/mock"
)

// mockAutoscalingAPI is a testify mock of the AutoscalingAPI interface.
type mockAutoscalingAPI struct {
	mock.Mock
}

func (m *mockAutoscalingAPI) DescribeAutoScalingGroups(ctx context.Context, input *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*autoscaling.DescribeAutoScalingGroupsOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAutoscalingAPI) DescribePolicies(ctx context.Context, input *autoscaling.DescribePoliciesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribePoliciesOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*autoscaling.DescribePoliciesOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAutoscalingAPI) DescribeScheduledActions(ctx context.Context, input *autoscaling.DescribeScheduledActionsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeScheduledActionsOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*autoscaling.DescribeScheduledActionsOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// newTestClient wires a Client to the mock with an instant sleep that
// counts invocations.
func newTestClient(svc *mockAutoscalingAPI, sleeps *int) *Client {
	return &Client{
		ASG: svc,
		ctx: context.TODO(),
		sleep: func(time.Duration) {
			if sleeps != nil {
				*sleeps++
			}
		},
	}
}
