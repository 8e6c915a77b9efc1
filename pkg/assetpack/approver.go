package assetpack

import "context"

// Approver handles user interaction for approval workflows,
// in particular packing with overwrite into a delivery folder that already has content.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the delivery version for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before overwriting files under target.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - target: Delivery folder that will be overwritten
	//   - confirm: Text the user must type to approve (the version token)
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, target, confirm string) (bool, error)
}
