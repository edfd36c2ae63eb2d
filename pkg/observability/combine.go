package observability

import (
	"context"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Combine returns hooks that invoke every non-nil callback of each set in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var (
		steps  []func(context.Context, *domain.StepEvent)
		rooms  []func(context.Context, *domain.RoomEvent)
		inputs []func(context.Context, *domain.UnitEvent)
		output []func(context.Context, *domain.UnitEvent)
		halts  []func(context.Context, *domain.HaltEvent)
	)
	for _, h := range sets {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnRoomCreated != nil {
			rooms = append(rooms, h.OnRoomCreated)
		}
		if h.OnInput != nil {
			inputs = append(inputs, h.OnInput)
		}
		if h.OnOutput != nil {
			output = append(output, h.OnOutput)
		}
		if h.OnHalt != nil {
			halts = append(halts, h.OnHalt)
		}
	}

	return domain.LifecycleHooks{
		OnStep:        fanout(steps),
		OnRoomCreated: fanout(rooms),
		OnInput:       fanout(inputs),
		OnOutput:      fanout(output),
		OnHalt:        fanout(halts),
	}
}

func fanout[E any](fns []func(context.Context, E)) func(context.Context, E) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(ctx context.Context, e E) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}
