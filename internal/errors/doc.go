// Package errors provides the coded error type used across rpg-battle.
//
// Every failure carries a Code so callers can tell the three kinds of
// problem apart without matching on text:
//   - Player input mistakes (an unknown item, an item that is not equipped,
//     an item that cannot be equipped). These use NotFound or InvalidArgument
//     and are reported back to the player; the game continues.
//     IsUserError covers both.
//   - Contract violations, such as starting a battle with a participant that
//     is already dead. These use FailedPrecondition.
//   - Variant definitions missing a required capability, such as equipment
//     with no slot or an action of an unknown kind. These use Unimplemented.
//
// Storage and random source failures are Internal; unreadable saved games are
// DataLoss. Nothing in this module retries automatically.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("What?! You don't have THAT!")
//	err := errors.InvalidArgumentf("%s cannot be equipped!", item.Name)
//
// Adding metadata:
//
//	err := errors.NotFound("player not found").
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save player")
//	}
//
// Wrap keeps the code of a wrapped *Error; other errors become Internal.
// GetMessage returns the outermost message, so user errors are passed up
// unwrapped when their text must reach the player.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", item.Name, vb)
//	errors.ValidateRange("success_rate", a.SuccessRate, 0, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
