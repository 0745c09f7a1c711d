package depot

import "fmt"

type commandKind int

const (
	cmdCreateEntity commandKind = iota
	cmdRemoveEntity
	cmdAddComponents
	cmdRemoveComponents
)

type command struct {
	kind       commandKind
	entity     EntityID
	data       ComponentMap
	components []*ComponentType
}

// CommandBuffer records structural mutations made while iteration may be in
// progress and replays them once it is safe. The log is strictly FIFO: within
// one flush, a create is guaranteed to have reserved its id before any later
// command that references it runs.
//
// Creates reserve their entity id eagerly, so callers hold a valid handle
// before the entity exists. Reservations are tracked separately from the log
// and are always released when the log is flushed or discarded.
type CommandBuffer struct {
	manager  *Manager
	commands []command
	reserved []EntityID
}

func newCommandBuffer(manager *Manager) *CommandBuffer {
	return &CommandBuffer{manager: manager}
}

// Len reports the number of buffered commands.
func (b *CommandBuffer) Len() int { return len(b.commands) }

// CreateEntity queues an entity creation and immediately returns the reserved
// id. The id is pending until Flush materializes it.
func (b *CommandBuffer) CreateEntity(data ComponentMap) EntityID {
	id := b.manager.ReserveID()
	b.reserved = append(b.reserved, id)
	b.commands = append(b.commands, command{kind: cmdCreateEntity, entity: id, data: data})
	return id
}

// RemoveEntity queues an entity removal.
func (b *CommandBuffer) RemoveEntity(id EntityID) {
	b.commands = append(b.commands, command{kind: cmdRemoveEntity, entity: id})
}

// AddComponents queues a component attach/overwrite.
func (b *CommandBuffer) AddComponents(id EntityID, data ComponentMap) {
	b.commands = append(b.commands, command{kind: cmdAddComponents, entity: id, data: data})
}

// RemoveComponents queues a component detach.
func (b *CommandBuffer) RemoveComponents(id EntityID, components ...*ComponentType) {
	b.commands = append(b.commands, command{kind: cmdRemoveComponents, entity: id, components: components})
}

// Flush replays every buffered command against the entity manager in record
// order, stopping at the first failure. Flush is not transactional: commands
// applied before a failure stay applied. Regardless of outcome, leftover
// reservations are released and the log is cleared, so a half-applied batch
// never leaves dangling pending ids.
func (b *CommandBuffer) Flush() (err error) {
	defer b.release()
	Config.logger.Trace().Int("commands", len(b.commands)).Msg("command buffer flush")
	for _, cmd := range b.commands {
		switch cmd.kind {
		case cmdCreateEntity:
			if err = b.manager.AddReserved(cmd.entity, cmd.data); err != nil {
				return fmt.Errorf("failed to apply queued entity creation: %w", err)
			}
		case cmdRemoveEntity:
			if err = b.manager.Remove(cmd.entity); err != nil {
				return fmt.Errorf("failed to apply queued entity removal: %w", err)
			}
		case cmdAddComponents:
			if err = b.manager.AddComponents(cmd.entity, cmd.data); err != nil {
				return fmt.Errorf("failed to apply queued component addition: %w", err)
			}
		case cmdRemoveComponents:
			if err = b.manager.RemoveComponents(cmd.entity, cmd.components...); err != nil {
				return fmt.Errorf("failed to apply queued component removal: %w", err)
			}
		}
	}
	return nil
}

// Clear discards the log without applying anything and releases every
// reservation. This is the cancellation path for an abandoned batch.
func (b *CommandBuffer) Clear() {
	b.release()
}

// release drops still-pending reservations and empties the log. Ids that were
// materialized during a flush are left untouched.
func (b *CommandBuffer) release() {
	for _, id := range b.reserved {
		b.manager.ReleaseID(id)
	}
	b.reserved = b.reserved[:0]
	b.commands = b.commands[:0]
}
