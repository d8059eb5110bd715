package mcprotocol

// blockTable lists the named blocks known to the server, in id order.
var blockTable = []struct {
	name  string
	block Block
}{
	{"air", Block{0, 0}},
	{"stone", Block{1, 0}},
	{"granite", Block{1, 1}},
	{"polished_granite", Block{1, 2}},
	{"diorite", Block{1, 3}},
	{"polished_diorite", Block{1, 4}},
	{"andesite", Block{1, 5}},
	{"polished_andesite", Block{1, 6}},
	{"grass", Block{2, 0}},
	{"dirt", Block{3, 0}},
	{"coarse_dirt", Block{3, 1}},
	{"podzol", Block{3, 2}},
	{"cobblestone", Block{4, 0}},
	{"oak_wood_plank", Block{5, 0}},
	{"spruce_wood_plank", Block{5, 1}},
	{"birch_wood_plank", Block{5, 2}},
	{"jungle_wood_plank", Block{5, 3}},
	{"acacia_wood_plank", Block{5, 4}},
	{"dark_oak_wood_plank", Block{5, 5}},
	{"oak_sapling", Block{6, 0}},
	{"spruce_sapling", Block{6, 1}},
	{"birch_sapling", Block{6, 2}},
	{"jungle_sapling", Block{6, 3}},
	{"acacia_sapling", Block{6, 4}},
	{"dark_oak_sapling", Block{6, 5}},
	{"bedrock", Block{7, 0}},
	{"flowing_water", Block{8, 0}},
	{"still_water", Block{9, 0}},
	{"flowing_lava", Block{10, 0}},
	{"still_lava", Block{11, 0}},
	{"sand", Block{12, 0}},
	{"red_sand", Block{12, 1}},
	{"gravel", Block{13, 0}},
	{"gold_ore", Block{14, 0}},
	{"iron_ore", Block{15, 0}},
	{"coal_ore", Block{16, 0}},
	{"oak_wood", Block{17, 0}},
	{"spruce_wood", Block{17, 1}},
	{"birch_wood", Block{17, 2}},
	{"jungle_wood", Block{17, 3}},
	{"oak_leaves", Block{18, 0}},
	{"spruce_leaves", Block{18, 1}},
	{"birch_leaves", Block{18, 2}},
	{"jungle_leaves", Block{18, 3}},
	{"sponge", Block{19, 0}},
	{"wet_sponge", Block{19, 1}},
	{"glass", Block{20, 0}},
	{"lapis_lazuli_ore", Block{21, 0}},
	{"lapis_lazuli_block", Block{22, 0}},
	{"dispenser", Block{23, 0}},
	{"sandstone", Block{24, 0}},
	{"chiseled_sandstone", Block{24, 1}},
	{"smooth_sandstone", Block{24, 2}},
	{"note_block", Block{25, 0}},
	{"bed", Block{26, 0}},
	{"powered_rail", Block{27, 0}},
	{"detector_rail", Block{28, 0}},
	{"sticky_piston", Block{29, 0}},
	{"cobweb", Block{30, 0}},
	{"dead_shrub", Block{31, 0}},
	{"tall_grass", Block{31, 1}},
	{"fern", Block{31, 2}},
	{"dead_bush", Block{32, 0}},
	{"piston", Block{33, 0}},
	{"piston_head", Block{34, 0}},
	{"white_wool", Block{35, 0}},
	{"orange_wool", Block{35, 1}},
	{"magenta_wool", Block{35, 2}},
	{"light_blue_wool", Block{35, 3}},
	{"yellow_wool", Block{35, 4}},
	{"lime_wool", Block{35, 5}},
	{"pink_wool", Block{35, 6}},
	{"gray_wool", Block{35, 7}},
	{"light_gray_wool", Block{35, 8}},
	{"cyan_wool", Block{35, 9}},
	{"purple_wool", Block{35, 10}},
	{"blue_wool", Block{35, 11}},
	{"brown_wool", Block{35, 12}},
	{"green_wool", Block{35, 13}},
	{"red_wool", Block{35, 14}},
	{"black_wool", Block{35, 15}},
	{"dandelion", Block{37, 0}},
	{"poppy", Block{38, 0}},
	{"blue_orchid", Block{38, 1}},
	{"allium", Block{38, 2}},
	{"azure_bluet", Block{38, 3}},
	{"red_tulip", Block{38, 4}},
	{"orange_tulip", Block{38, 5}},
	{"white_tulip", Block{38, 6}},
	{"pink_tulip", Block{38, 7}},
	{"oxeye_daisy", Block{38, 8}},
	{"brown_mushroom", Block{39, 0}},
	{"red_mushroom", Block{40, 0}},
	{"gold_block", Block{41, 0}},
	{"iron_block", Block{42, 0}},
	{"double_stone_slab", Block{43, 0}},
	{"double_sandstone_slab", Block{43, 1}},
	{"double_wooden_slab", Block{43, 2}},
	{"double_cobblestone_slab", Block{43, 3}},
	{"double_brick_slab", Block{43, 4}},
	{"double_stone_brick_slab", Block{43, 5}},
	{"double_nether_brick_slab", Block{43, 6}},
	{"double_quartz_slab", Block{43, 7}},
	{"stone_slab", Block{44, 0}},
	{"sandstone_slab", Block{44, 1}},
	{"wooden_slab", Block{44, 2}},
	{"cobblestone_slab", Block{44, 3}},
	{"brick_slab", Block{44, 4}},
	{"stone_brick_slab", Block{44, 5}},
	{"nether_brick_slab", Block{44, 6}},
	{"quartz_slab", Block{44, 7}},
	{"bricks", Block{45, 0}},
	{"tnt", Block{46, 0}},
	{"bookshelf", Block{47, 0}},
	{"moss_stone", Block{48, 0}},
	{"obsidian", Block{49, 0}},
	{"torch", Block{50, 0}},
	{"fire", Block{51, 0}},
	{"monster_spawner", Block{52, 0}},
	{"oak_wood_stairs", Block{53, 0}},
	{"chest", Block{54, 0}},
	{"redstone_wire", Block{55, 0}},
	{"diamond_ore", Block{56, 0}},
	{"diamond_block", Block{57, 0}},
	{"crafting_table", Block{58, 0}},
	{"wheat_crops", Block{59, 0}},
	{"farmland", Block{60, 0}},
	{"furnace", Block{61, 0}},
	{"burning_furnace", Block{62, 0}},
	{"standing_sign_block", Block{63, 0}},
	{"oak_door_block", Block{64, 0}},
	{"ladder", Block{65, 0}},
	{"rail", Block{66, 0}},
	{"cobblestone_stairs", Block{67, 0}},
	{"wallmounted_sign_block", Block{68, 0}},
	{"lever", Block{69, 0}},
	{"stone_pressure_plate", Block{70, 0}},
	{"iron_door_block", Block{71, 0}},
	{"wooden_pressure_plate", Block{72, 0}},
	{"redstone_ore", Block{73, 0}},
	{"glowing_redstone_ore", Block{74, 0}},
	{"redstone_torch_off", Block{75, 0}},
	{"redstone_torch_on", Block{76, 0}},
	{"stone_button", Block{77, 0}},
	{"snow", Block{78, 0}},
	{"ice", Block{79, 0}},
	{"snow_block", Block{80, 0}},
	{"cactus", Block{81, 0}},
	{"clay", Block{82, 0}},
	{"sugar_canes", Block{83, 0}},
	{"jukebox", Block{84, 0}},
	{"oak_fence", Block{85, 0}},
	{"pumpkin", Block{86, 0}},
	{"netherrack", Block{87, 0}},
	{"soul_sand", Block{88, 0}},
	{"glowstone", Block{89, 0}},
	{"nether_portal", Block{90, 0}},
	{"jack_olantern", Block{91, 0}},
	{"cake_block", Block{92, 0}},
	{"redstone_repeater_block_off", Block{93, 0}},
	{"redstone_repeater_block_on", Block{94, 0}},
	{"white_stained_glass", Block{95, 0}},
	{"orange_stained_glass", Block{95, 1}},
	{"magenta_stained_glass", Block{95, 2}},
	{"light_blue_stained_glass", Block{95, 3}},
	{"yellow_stained_glass", Block{95, 4}},
	{"lime_stained_glass", Block{95, 5}},
	{"pink_stained_glass", Block{95, 6}},
	{"gray_stained_glass", Block{95, 7}},
	{"light_gray_stained_glass", Block{95, 8}},
	{"cyan_stained_glass", Block{95, 9}},
	{"purple_stained_glass", Block{95, 10}},
	{"blue_stained_glass", Block{95, 11}},
	{"brown_stained_glass", Block{95, 12}},
	{"green_stained_glass", Block{95, 13}},
	{"red_stained_glass", Block{95, 14}},
	{"black_stained_glass", Block{95, 15}},
	{"wooden_trapdoor", Block{96, 0}},
	{"stone_monster_egg", Block{97, 0}},
	{"cobblestone_monster_egg", Block{97, 1}},
	{"stone_brick_monster_egg", Block{97, 2}},
	{"mossy_stone_brick_monster_egg", Block{97, 3}},
	{"cracked_stone_brick_monster_egg", Block{97, 4}},
	{"chiseled_stone_brick_monster_egg", Block{97, 5}},
	{"stone_bricks", Block{98, 0}},
	{"mossy_stone_bricks", Block{98, 1}},
	{"cracked_stone_bricks", Block{98, 2}},
	{"chiseled_stone_bricks", Block{98, 3}},
	{"brown_mushroom_block", Block{99, 0}},
	{"red_mushroom_block", Block{100, 0}},
	{"iron_bars", Block{101, 0}},
	{"glass_pane", Block{102, 0}},
	{"melon_block", Block{103, 0}},
	{"pumpkin_stem", Block{104, 0}},
	{"melon_stem", Block{105, 0}},
	{"vines", Block{106, 0}},
	{"oak_fence_gate", Block{107, 0}},
	{"brick_stairs", Block{108, 0}},
	{"stone_brick_stairs", Block{109, 0}},
	{"mycelium", Block{110, 0}},
	{"lily_pad", Block{111, 0}},
	{"nether_brick", Block{112, 0}},
	{"nether_brick_fence", Block{113, 0}},
	{"nether_brick_stairs", Block{114, 0}},
	{"nether_wart", Block{115, 0}},
	{"enchantment_table", Block{116, 0}},
	{"brewing_stand", Block{117, 0}},
	{"cauldron", Block{118, 0}},
	{"end_portal", Block{119, 0}},
	{"end_portal_frame", Block{120, 0}},
	{"end_stone", Block{121, 0}},
	{"dragon_egg", Block{122, 0}},
	{"redstone_lamp_inactive", Block{123, 0}},
	{"redstone_lamp_active", Block{124, 0}},
	{"double_oak_wood_slab", Block{125, 0}},
	{"double_spruce_wood_slab", Block{125, 1}},
	{"double_birch_wood_slab", Block{125, 2}},
	{"double_jungle_wood_slab", Block{125, 3}},
	{"double_acacia_wood_slab", Block{125, 4}},
	{"double_dark_oak_wood_slab", Block{125, 5}},
	{"oak_wood_slab", Block{126, 0}},
	{"spruce_wood_slab", Block{126, 1}},
	{"birch_wood_slab", Block{126, 2}},
	{"jungle_wood_slab", Block{126, 3}},
	{"acacia_wood_slab", Block{126, 4}},
	{"dark_oak_wood_slab", Block{126, 5}},
	{"cocoa", Block{127, 0}},
	{"sandstone_stairs", Block{128, 0}},
	{"emerald_ore", Block{129, 0}},
	{"ender_chest", Block{130, 0}},
	{"tripwire_hook", Block{131, 0}},
	{"tripwire", Block{132, 0}},
	{"emerald_block", Block{133, 0}},
	{"spruce_wood_stairs", Block{134, 0}},
	{"birch_wood_stairs", Block{135, 0}},
	{"jungle_wood_stairs", Block{136, 0}},
	{"command_block", Block{137, 0}},
	{"beacon", Block{138, 0}},
	{"cobblestone_wall", Block{139, 0}},
	{"mossy_cobblestone_wall", Block{139, 1}},
	{"flower_pot", Block{140, 0}},
	{"carrots", Block{141, 0}},
	{"potatoes", Block{142, 0}},
	{"wooden_button", Block{143, 0}},
	{"mob_head", Block{144, 0}},
	{"anvil", Block{145, 0}},
	{"trapped_chest", Block{146, 0}},
	{"weighted_pressure_plate_light", Block{147, 0}},
	{"weighted_pressure_plate_heavy", Block{148, 0}},
	{"redstone_comparator_inactive", Block{149, 0}},
	{"redstone_comparator_active", Block{150, 0}},
	{"daylight_sensor", Block{151, 0}},
	{"redstone_block", Block{152, 0}},
	{"nether_quartz_ore", Block{153, 0}},
	{"hopper", Block{154, 0}},
	{"quartz_block", Block{155, 0}},
	{"chiseled_quartz_block", Block{155, 1}},
	{"pillar_quartz_block", Block{155, 2}},
	{"quartz_stairs", Block{156, 0}},
	{"activator_rail", Block{157, 0}},
	{"dropper", Block{158, 0}},
	{"white_hardened_clay", Block{159, 0}},
	{"orange_hardened_clay", Block{159, 1}},
	{"magenta_hardened_clay", Block{159, 2}},
	{"light_blue_hardened_clay", Block{159, 3}},
	{"yellow_hardened_clay", Block{159, 4}},
	{"lime_hardened_clay", Block{159, 5}},
	{"pink_hardened_clay", Block{159, 6}},
	{"gray_hardened_clay", Block{159, 7}},
	{"light_gray_hardened_clay", Block{159, 8}},
	{"cyan_hardened_clay", Block{159, 9}},
	{"purple_hardened_clay", Block{159, 10}},
	{"blue_hardened_clay", Block{159, 11}},
	{"brown_hardened_clay", Block{159, 12}},
	{"green_hardened_clay", Block{159, 13}},
	{"red_hardened_clay", Block{159, 14}},
	{"black_hardened_clay", Block{159, 15}},
	{"white_stained_glass_pane", Block{160, 0}},
	{"orange_stained_glass_pane", Block{160, 1}},
	{"magenta_stained_glass_pane", Block{160, 2}},
	{"light_blue_stained_glass_pane", Block{160, 3}},
	{"yellow_stained_glass_pane", Block{160, 4}},
	{"lime_stained_glass_pane", Block{160, 5}},
	{"pink_stained_glass_pane", Block{160, 6}},
	{"gray_stained_glass_pane", Block{160, 7}},
	{"light_gray_stained_glass_pane", Block{160, 8}},
	{"cyan_stained_glass_pane", Block{160, 9}},
	{"purple_stained_glass_pane", Block{160, 10}},
	{"blue_stained_glass_pane", Block{160, 11}},
	{"brown_stained_glass_pane", Block{160, 12}},
	{"green_stained_glass_pane", Block{160, 13}},
	{"red_stained_glass_pane", Block{160, 14}},
	{"black_stained_glass_pane", Block{160, 15}},
	{"acacia_leaves", Block{161, 0}},
	{"dark_oak_leaves", Block{161, 1}},
	{"acacia_wood", Block{162, 0}},
	{"dark_oak_wood", Block{162, 1}},
	{"acacia_wood_stairs", Block{163, 0}},
	{"dark_oak_wood_stairs", Block{164, 0}},
	{"slime_block", Block{165, 0}},
	{"barrier", Block{166, 0}},
	{"iron_trapdoor", Block{167, 0}},
	{"prismarine", Block{168, 0}},
	{"prismarine_bricks", Block{168, 1}},
	{"dark_prismarine", Block{168, 2}},
	{"sea_lantern", Block{169, 0}},
	{"hay_bale", Block{170, 0}},
	{"white_carpet", Block{171, 0}},
	{"orange_carpet", Block{171, 1}},
	{"magenta_carpet", Block{171, 2}},
	{"light_blue_carpet", Block{171, 3}},
	{"yellow_carpet", Block{171, 4}},
	{"lime_carpet", Block{171, 5}},
	{"pink_carpet", Block{171, 6}},
	{"gray_carpet", Block{171, 7}},
	{"light_gray_carpet", Block{171, 8}},
	{"cyan_carpet", Block{171, 9}},
	{"purple_carpet", Block{171, 10}},
	{"blue_carpet", Block{171, 11}},
	{"brown_carpet", Block{171, 12}},
	{"green_carpet", Block{171, 13}},
	{"red_carpet", Block{171, 14}},
	{"black_carpet", Block{171, 15}},
	{"hardened_clay", Block{172, 0}},
	{"block_of_coal", Block{173, 0}},
	{"packed_ice", Block{174, 0}},
	{"sunflower", Block{175, 0}},
	{"lilac", Block{175, 1}},
	{"double_tallgrass", Block{175, 2}},
	{"large_fern", Block{175, 3}},
	{"rose_bush", Block{175, 4}},
	{"peony", Block{175, 5}},
	{"freestanding_banner", Block{176, 0}},
	{"wallmounted_banner", Block{177, 0}},
	{"inverted_daylight_sensor", Block{178, 0}},
	{"red_sandstone", Block{179, 0}},
	{"chiseled_red_sandstone", Block{179, 1}},
	{"smooth_red_sandstone", Block{179, 2}},
	{"red_sandstone_stairs", Block{180, 0}},
	{"double_red_sandstone_slab", Block{181, 0}},
	{"red_sandstone_slab", Block{182, 0}},
	{"spruce_fence_gate", Block{183, 0}},
	{"birch_fence_gate", Block{184, 0}},
	{"jungle_fence_gate", Block{185, 0}},
	{"dark_oak_fence_gate", Block{186, 0}},
	{"acacia_fence_gate", Block{187, 0}},
	{"spruce_fence", Block{188, 0}},
	{"birch_fence", Block{189, 0}},
	{"jungle_fence", Block{190, 0}},
	{"dark_oak_fence", Block{191, 0}},
	{"acacia_fence", Block{192, 0}},
	{"spruce_door_block", Block{193, 0}},
	{"birch_door_block", Block{194, 0}},
	{"jungle_door_block", Block{195, 0}},
	{"acacia_door_block", Block{196, 0}},
	{"dark_oak_door_block", Block{197, 0}},
	{"end_rod", Block{198, 0}},
	{"chorus_plant", Block{199, 0}},
	{"chorus_flower", Block{200, 0}},
	{"purpur_block", Block{201, 0}},
	{"purpur_pillar", Block{202, 0}},
	{"purpur_stairs", Block{203, 0}},
	{"purpur_double_slab", Block{204, 0}},
	{"purpur_slab", Block{205, 0}},
	{"end_stone_bricks", Block{206, 0}},
	{"beetroot_block", Block{207, 0}},
	{"grass_path", Block{208, 0}},
	{"end_gateway", Block{209, 0}},
	{"repeating_command_block", Block{210, 0}},
	{"chain_command_block", Block{211, 0}},
	{"frosted_ice", Block{212, 0}},
	{"magma_block", Block{213, 0}},
	{"nether_wart_block", Block{214, 0}},
	{"red_nether_brick", Block{215, 0}},
	{"bone_block", Block{216, 0}},
	{"structure_void", Block{217, 0}},
	{"observer", Block{218, 0}},
	{"white_shulker_box", Block{219, 0}},
	{"orange_shulker_box", Block{220, 0}},
	{"magenta_shulker_box", Block{221, 0}},
	{"light_blue_shulker_box", Block{222, 0}},
	{"yellow_shulker_box", Block{223, 0}},
	{"lime_shulker_box", Block{224, 0}},
	{"pink_shulker_box", Block{225, 0}},
	{"gray_shulker_box", Block{226, 0}},
	{"light_gray_shulker_box", Block{227, 0}},
	{"cyan_shulker_box", Block{228, 0}},
	{"purple_shulker_box", Block{229, 0}},
	{"blue_shulker_box", Block{230, 0}},
	{"brown_shulker_box", Block{231, 0}},
	{"green_shulker_box", Block{232, 0}},
	{"red_shulker_box", Block{233, 0}},
	{"black_shulker_box", Block{234, 0}},
	{"white_glazed_terracotta", Block{235, 0}},
	{"orange_glazed_terracotta", Block{236, 0}},
	{"magenta_glazed_terracotta", Block{237, 0}},
	{"light_blue_glazed_terracotta", Block{238, 0}},
	{"yellow_glazed_terracotta", Block{239, 0}},
	{"lime_glazed_terracotta", Block{240, 0}},
	{"pink_glazed_terracotta", Block{241, 0}},
	{"gray_glazed_terracotta", Block{242, 0}},
	{"light_gray_glazed_terracotta", Block{243, 0}},
	{"cyan_glazed_terracotta", Block{244, 0}},
	{"purple_glazed_terracotta", Block{245, 0}},
	{"blue_glazed_terracotta", Block{246, 0}},
	{"brown_glazed_terracotta", Block{247, 0}},
	{"green_glazed_terracotta", Block{248, 0}},
	{"red_glazed_terracotta", Block{249, 0}},
	{"black_glazed_terracotta", Block{250, 0}},
	{"white_concrete", Block{251, 0}},
	{"orange_concrete", Block{251, 1}},
	{"magenta_concrete", Block{251, 2}},
	{"light_blue_concrete", Block{251, 3}},
	{"yellow_concrete", Block{251, 4}},
	{"lime_concrete", Block{251, 5}},
	{"pink_concrete", Block{251, 6}},
	{"gray_concrete", Block{251, 7}},
	{"light_gray_concrete", Block{251, 8}},
	{"cyan_concrete", Block{251, 9}},
	{"purple_concrete", Block{251, 10}},
	{"blue_concrete", Block{251, 11}},
	{"brown_concrete", Block{251, 12}},
	{"green_concrete", Block{251, 13}},
	{"red_concrete", Block{251, 14}},
	{"black_concrete", Block{251, 15}},
	{"white_concrete_powder", Block{252, 0}},
	{"orange_concrete_powder", Block{252, 1}},
	{"magenta_concrete_powder", Block{252, 2}},
	{"light_blue_concrete_powder", Block{252, 3}},
	{"yellow_concrete_powder", Block{252, 4}},
	{"lime_concrete_powder", Block{252, 5}},
	{"pink_concrete_powder", Block{252, 6}},
	{"gray_concrete_powder", Block{252, 7}},
	{"light_gray_concrete_powder", Block{252, 8}},
	{"cyan_concrete_powder", Block{252, 9}},
	{"purple_concrete_powder", Block{252, 10}},
	{"blue_concrete_powder", Block{252, 11}},
	{"brown_concrete_powder", Block{252, 12}},
	{"green_concrete_powder", Block{252, 13}},
	{"red_concrete_powder", Block{252, 14}},
	{"black_concrete_powder", Block{252, 15}},
	{"structure_block", Block{255, 0}},
}
