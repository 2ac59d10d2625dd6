package seeder

import (
	"fmt"
	"strings"

	"github.com/pcruz7/deckbuilder/internal/domain"
)

// cardImageURL derives the catalog image URL from a card name
func cardImageURL(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, " ", "-")
	return fmt.Sprintf("https://cdn.royaleapi.com/static/img/cards-150/%s.png", slug)
}

type seedCard struct {
	name        string
	elixir      int
	rarity      domain.Rarity
	cardType    domain.CardType
	description string
}

var catalog = []seedCard{
	// COMMON
	{"Knight", 3, domain.RarityCommon, domain.CardTypeTroop, "A tough melee fighter. The Barbarian's handsome, cultured cousin."},
	{"Archers", 3, domain.RarityCommon, domain.CardTypeTroop, "A pair of lightly armored ranged attackers. They'll help you take down ground and air units."},
	{"Goblins", 2, domain.RarityCommon, domain.CardTypeTroop, "Three fast, unarmored melee attackers. Small, fast, green and mean!"},
	{"Bomber", 2, domain.RarityCommon, domain.CardTypeTroop, "This crazed bomber throws powerful bombs that deal area damage. Best when attacking from behind a tank."},
	{"Minions", 3, domain.RarityCommon, domain.CardTypeTroop, "Three fast, unarmored flying attackers. Roses are red, minions are blue!"},
	{"Minion Horde", 5, domain.RarityCommon, domain.CardTypeTroop, "Six fast, unarmored flying attackers. Three's a crowd, six is a horde!"},
	{"Bats", 2, domain.RarityCommon, domain.CardTypeTroop, "Five tiny flying creatures that deal damage fast. Great for taking out troops."},
	{"Ice Spirit", 1, domain.RarityCommon, domain.CardTypeTroop, "Spawns one lively little Ice Spirit to freeze a group of enemies."},
	{"Fire Spirit", 1, domain.RarityCommon, domain.CardTypeTroop, "Spawns one lively little Fire Spirit to deal area damage."},
	{"Royal Recruits", 7, domain.RarityCommon, domain.CardTypeTroop, "Deploys a line of recruits armed with spears and shields. Deals double damage when attacking buildings."},
	{"Skeletons", 1, domain.RarityCommon, domain.CardTypeTroop, "Three fast, very weak melee fighters. Surround your enemies with this pile of bones!"},
	{"Skeleton Barrel", 3, domain.RarityCommon, domain.CardTypeTroop, "It's a Skeleton party in a barrel! Drops 8 Skeletons onto your enemy's crown towers."},
	{"Rascals", 5, domain.RarityCommon, domain.CardTypeTroop, "The Rascal Boy has a sweet tooth and he throws his Sweet Stuff to slow down enemies."},
	{"Firecracker", 3, domain.RarityCommon, domain.CardTypeTroop, "She is a ranged splash damage troop. If she is left alone, her firecracker attacks get stronger!"},
	{"Elite Barbarians", 6, domain.RarityCommon, domain.CardTypeTroop, "Spawns a pair of leveled up Barbarians with mean mustaches and worse tempers!"},
	{"Zap", 2, domain.RarityCommon, domain.CardTypeSpell, "Zaps enemies, briefly stunning them and dealing damage inside a small radius."},
	{"Arrows", 3, domain.RarityCommon, domain.CardTypeSpell, "Arrows pepper a large area, damaging all enemies hit."},
	{"Giant Snowball", 2, domain.RarityCommon, domain.CardTypeSpell, "Rolls over enemies, damaging and slowing them. Hits flying troops too!"},
	{"Royal Delivery", 3, domain.RarityCommon, domain.CardTypeSpell, "Deals damage and slows down troops. Spawns a Royal Recruit after landing."},
	{"Cannon", 3, domain.RarityCommon, domain.CardTypeBuilding, "Defensive building. Shoots cannonballs with deadly effect, but cannot target flying troops."},
	{"Mortar", 4, domain.RarityCommon, domain.CardTypeBuilding, "Defensive building with a long range. Shoots exploding shells, but cannot target troops nearby."},
	{"Tesla", 4, domain.RarityCommon, domain.CardTypeBuilding, "Defensive building. Whenever it's not zapping the enemy, the power of Electrickery is best shown in a coil of wire!"},

	// RARE
	{"Giant", 5, domain.RarityRare, domain.CardTypeTroop, "Slow but durable, only attacks buildings. A real one-man wrecking crew!"},
	{"Valkyrie", 4, domain.RarityRare, domain.CardTypeTroop, "Tough melee fighter that targets ground troops. Swings her axe to deal area damage!"},
	{"Musketeer", 4, domain.RarityRare, domain.CardTypeTroop, "Don't be fooled by her delicately coiffed hair, the Musketeer is a mean shot with her trusty boomstick."},
	{"Mini P.E.K.K.A.", 4, domain.RarityRare, domain.CardTypeTroop, "The Arena is a certified butterfly-free zone. No distractions for P.E.K.K.A, only destruction."},
	{"Hog Rider", 4, domain.RarityRare, domain.CardTypeTroop, "Fast melee troop that targets buildings and can jump over the river. He followed the echoing call of Hog Rider all the way through the arena doors."},
	{"Mega Minion", 3, domain.RarityRare, domain.CardTypeTroop, "Flying, deals moderate damage, has high hitpoints. He lands with the force of 1000 mustaches."},
	{"Three Musketeers", 9, domain.RarityRare, domain.CardTypeTroop, "Trio of powerful, independent markswomen, fighting for justice and honor. Disliking Barbarians, eyeliner, and ice cream."},
	{"Ice Golem", 2, domain.RarityRare, domain.CardTypeTroop, "He's slow and doesn't deal much damage, but he has a lot of hitpoints and slows nearby enemies when destroyed."},
	{"Royal Giant", 6, domain.RarityRare, domain.CardTypeTroop, "Destroying enemy buildings with his massive cannon is his job; making a raggedy blond beard look good is his passion."},
	{"Spear Goblins", 2, domain.RarityRare, domain.CardTypeTroop, "Three unarmored ranged attackers. Who the heck taught these guys to throw spears!?"},
	{"Tombstone", 3, domain.RarityRare, domain.CardTypeBuilding, "Defensive building. Spawns Skeletons periodically. When destroyed, spawns 4 Skeletons."},
	{"Inferno Tower", 5, domain.RarityRare, domain.CardTypeBuilding, "Defensive building. Gradually increases damage. Excellent for taking down high-hitpoint enemies."},
	{"Furnace", 4, domain.RarityRare, domain.CardTypeBuilding, "Defensive building that spawns Fire Spirits. But the spirits are free!"},
	{"Elixir Collector", 6, domain.RarityRare, domain.CardTypeBuilding, "Produces Elixir over time. Protect it to maximize your gains!"},
	{"Rocket", 6, domain.RarityRare, domain.CardTypeSpell, "Deals high damage to a small area. Looks really awesome doing it. Reduced damage to Crown Towers."},
	{"Earthquake", 3, domain.RarityRare, domain.CardTypeSpell, "Quakes the ground, damages buildings. Can't affect troops, only buildings."},
	{"Heal Spirit", 1, domain.RarityRare, domain.CardTypeSpell, "A happy spirit that heals nearby friendly troops. Can be placed anywhere on the battlefield."},

	// EPIC
	{"P.E.K.K.A", 7, domain.RarityEpic, domain.CardTypeTroop, "A heavily armored, slow melee fighter. Deals high damage and has high hitpoints."},
	{"Golem", 8, domain.RarityEpic, domain.CardTypeTroop, "Slow but durable, only attacks buildings. When destroyed, splits into two Golemites!"},
	{"Baby Dragon", 4, domain.RarityEpic, domain.CardTypeTroop, "Burps out big fireballs that deal splash damage. Tanky and deals area damage!"},
	{"Witch", 5, domain.RarityEpic, domain.CardTypeTroop, "Summons Skeletons, shoots destructive fireballs from a distance. Please excuse her, she isn't a morning person."},
	{"Prince", 5, domain.RarityEpic, domain.CardTypeTroop, "Don't let the little pony fool you. Once the Prince gets a running start, you WILL be trampled."},
	{"Dark Prince", 4, domain.RarityEpic, domain.CardTypeTroop, "The Dark Prince deals area damage and lets his spiked club do the talking for him - because when he does talk, it sounds like he has a bucket on his head."},
	{"Executioner", 5, domain.RarityEpic, domain.CardTypeTroop, "He throws his axe like a boomerang, striking all enemies on the way out AND back."},
	{"Bowler", 5, domain.RarityEpic, domain.CardTypeTroop, "This big blue dude digs the simple things in life - Dark Elixir drinks and throwing rocks."},
	{"Balloon", 5, domain.RarityEpic, domain.CardTypeTroop, "As pretty as they are, you won't want a parade of THESE balloons showing up on the horizon."},
	{"Hunter", 4, domain.RarityEpic, domain.CardTypeTroop, "He deals BIG area damage up close, less from far away. Get in his face and he'll give you a face full of pellets!"},
	{"Giant Skeleton", 6, domain.RarityEpic, domain.CardTypeTroop, "The bigger the skeleton, the bigger the bomb. Carries a bomb that blows up when he dies!"},
	{"Goblin Giant", 6, domain.RarityEpic, domain.CardTypeTroop, "He's got a huge shield and two loyal Spear Goblins on his back. What could be better?"},
	{"Electro Dragon", 5, domain.RarityEpic, domain.CardTypeTroop, "Electroshocks up to three troops or buildings at once. Attacks slow, but hits hard!"},
	{"Cannon Cart", 5, domain.RarityEpic, domain.CardTypeTroop, "A Cannon on wheels? Bet they won't see that coming! Once you break its shield, it becomes a cannon building."},
	{"Wall Breakers", 2, domain.RarityEpic, domain.CardTypeTroop, "A pair of lightly armored bombers seek out buildings. Deals extra damage to buildings!"},
	{"Skeleton Army", 3, domain.RarityEpic, domain.CardTypeTroop, "Spawns an army of Skeletons. Useful for distracting and surrounding troops."},
	{"Goblin Drill", 4, domain.RarityEpic, domain.CardTypeBuilding, "Drills into the ground and spawns Goblins anywhere in the arena. A portable Goblin Hut!"},
	{"X-Bow", 6, domain.RarityEpic, domain.CardTypeBuilding, "A building that can hit enemy Crown Towers from your side of the Arena. Long range and packs a punch!"},
	{"Freeze", 4, domain.RarityEpic, domain.CardTypeSpell, "Freezes troops and buildings, making them unable to move or attack. Doesn't affect Crown Towers."},
	{"Lightning", 6, domain.RarityEpic, domain.CardTypeSpell, "Bolts of lightning damage and stun the three enemy troops or buildings with the highest hitpoints in the target area."},
	{"Poison", 4, domain.RarityEpic, domain.CardTypeSpell, "Covers the target area in a sticky toxin, damaging and slowing down troops and buildings."},
	{"Tornado", 3, domain.RarityEpic, domain.CardTypeSpell, "Drags enemy troops to its center while dealing damage over time. Can be used to activate the King's Tower!"},
	{"Mirror", 0, domain.RarityEpic, domain.CardTypeSpell, "Mirrors your last card played for +1 Elixir. Does NOT mirror Elixir Collector!"},
	{"Clone", 3, domain.RarityEpic, domain.CardTypeSpell, "Duplicates all friendly troops in the target area. Cloned troops are fragile, but pack the same punch!"},
	{"Rage", 2, domain.RarityEpic, domain.CardTypeSpell, "Increases the movement speed and attack speed of friendly troops. Chug! Chug! Chug!"},
	{"Barbarian Barrel", 2, domain.RarityEpic, domain.CardTypeSpell, "A rolling barrel that deals damage. Spawns a Barbarian when destroyed!"},
	{"Goblin Curse", 2, domain.RarityEpic, domain.CardTypeSpell, "Turns enemy troops into Goblins for a few seconds!"},
	{"Goblin Cage", 4, domain.RarityEpic, domain.CardTypeBuilding, "Spawns a Goblin Brawler once destroyed. Doesn't target air units."},
	{"Vines", 3, domain.RarityEpic, domain.CardTypeSpell, "Sprouts vines on both sides of the Arena that pull troops, slow them down and make them retarget."},

	// LEGENDARY
	{"Mega Knight", 7, domain.RarityLegendary, domain.CardTypeTroop, "He jumps on his enemies, stunning them and dealing massive damage. He has armor of steel and a mustache of night!"},
	{"Miner", 3, domain.RarityLegendary, domain.CardTypeTroop, "The Miner can be deployed anywhere in the arena. It's not magic, it's a shovel. A shovel that digs really, really fast."},
	{"Princess", 3, domain.RarityLegendary, domain.CardTypeTroop, "This stunning Princess shoots flaming arrows from long range. If you're feeling warm feelings towards her, it's probably because you're on fire."},
	{"Ice Wizard", 3, domain.RarityLegendary, domain.CardTypeTroop, "This chill caster throws ice shards that slow down enemies' movement and attack speed. Despite being freezing cold, he has a warm personality!"},
	{"Lava Hound", 7, domain.RarityLegendary, domain.CardTypeTroop, "The Lava Hound is a majestic flying beast that attacks buildings. The Lava Pups are less majestic angry babies that attack anything."},
	{"Inferno Dragon", 4, domain.RarityLegendary, domain.CardTypeTroop, "Shoots a focused beam of fire that increases in damage over time. Wears a helmet because flying can be dangerous."},
	{"Sparky", 6, domain.RarityLegendary, domain.CardTypeTroop, "Sparky slowly charges up, then unloads MASSIVE area damage. Overkill isn't in her vocabulary."},
	{"Magic Archer", 4, domain.RarityLegendary, domain.CardTypeTroop, "He's a Legendary sharpshooter with incredible range and a magic arrow that keeps on flying and damaging everything in its path."},
	{"Night Witch", 4, domain.RarityLegendary, domain.CardTypeTroop, "Summons Bats to do her bidding. Raised from the dead, she can summon Bats from the dead, too!"},
	{"Bandit", 3, domain.RarityLegendary, domain.CardTypeTroop, "The Bandit dashes to her target and delivers an extra big hit! While dashing, she can't be touched."},
	{"Royal Ghost", 3, domain.RarityLegendary, domain.CardTypeTroop, "He drifts silently and invisibly through the arena until he attacks or takes damage."},
	{"Ram Rider", 5, domain.RarityLegendary, domain.CardTypeTroop, "The Ram Rider charges through the Arena, dealing damage to Crown Towers. The rider snares enemies with her bola!"},
	{"Fisherman", 3, domain.RarityLegendary, domain.CardTypeTroop, "He'll hook you and bring you right next to him for a beating. The first time, it's funny. After that, it's just rude."},
	{"The Log", 2, domain.RarityLegendary, domain.CardTypeSpell, "A Legendary log that knocks back small troops and damages all ground troops in its path. A Legendary log! What's it worth to you?"},
	{"Graveyard", 5, domain.RarityLegendary, domain.CardTypeSpell, "Surprise! It's a party. A Skeleton party. Anywhere in the Arena. Yay!"},
	{"Spirit Empress", 6, domain.RarityLegendary, domain.CardTypeSpell, "She summons spirits to heal your troops and damage enemies. A true master of the spiritual arts!"},
}
