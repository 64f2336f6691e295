package service

import (
	"errors"
	"fmt"

	mcp "github.com/metoro-io/mcp-golang"

	"github.com/nerdfunk-net/nautobot-mcp/internal/onboard"
	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
)

// onboardDevice resolves names to ids and starts the provisioning job.
// Validation failures are rendered as text so the caller can correct the
// request; resolution and job failures come back as readable reports from the
// orchestrator itself.
func (s *NautobotMCPService) onboardDevice(args OnboardDeviceArgs) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool("onboard_device", args, func() error {
		report, err := s.orchestrator.Onboard(onboard.Request{
			IPAddress:                     args.IPAddress,
			Location:                      args.Location,
			SecretGroups:                  args.SecretGroups,
			Role:                          args.Role,
			Namespace:                     args.Namespace,
			Status:                        args.Status,
			Platform:                      args.Platform,
			Port:                          args.Port,
			Timeout:                       args.Timeout,
			UpdateDevicesWithoutPrimaryIP: args.UpdateDevicesWithoutPrimaryIP,
		})
		if err != nil {
			var qe *query.Error
			if errors.As(err, &qe) {
				response = mcp.NewToolResponse(mcp.NewTextContent(qe.Message))
				return err
			}
			return fmt.Errorf("device onboarding failed: %w", err)
		}

		response = mcp.NewToolResponse(mcp.NewTextContent(report))
		return nil
	})

	if response != nil {
		return response, nil
	}
	return nil, err
}
